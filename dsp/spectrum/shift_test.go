package spectrum

import (
	"slices"
	"testing"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "even", in: []int{0, 1, 2, 3, -4, -3, -2, -1}, want: []int{-4, -3, -2, -1, 0, 1, 2, 3}},
		{name: "odd", in: []int{0, 1, 2, -2, -1}, want: []int{-2, -1, 0, 1, 2}},
		{name: "single", in: []int{7}, want: []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Shift() = %v, want %v", got, tt.want)
			}

			if back := InverseShift(got); !slices.Equal(back, tt.in) {
				t.Fatalf("InverseShift(Shift()) = %v, want %v", back, tt.in)
			}
		})
	}

	if Shift([]float64(nil)) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestFrequencies(t *testing.T) {
	tests := []struct {
		n    int
		fs   float64
		want []float64
	}{
		{n: 8, fs: 8, want: []float64{0, 1, 2, 3, -4, -3, -2, -1}},
		{n: 5, fs: 10, want: []float64{0, 2, 4, -4, -2}},
		{n: 1, fs: 100, want: []float64{0}},
	}

	for _, tt := range tests {
		if got := Frequencies(tt.n, tt.fs); !slices.Equal(got, tt.want) {
			t.Errorf("Frequencies(%d, %v) = %v, want %v", tt.n, tt.fs, got, tt.want)
		}
	}

	if got := ShiftedFrequencies(8, 8); !slices.Equal(got, []float64{-4, -3, -2, -1, 0, 1, 2, 3}) {
		t.Errorf("ShiftedFrequencies(8, 8) = %v", got)
	}

	if Frequencies(0, 1) != nil {
		t.Error("expected nil for n = 0")
	}
}
