package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"box", []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{1, 3, 6, 5, 3}},
		{"identity", []float64{1, 2, 3, 4, 5}, []float64{1}, []float64{1, 2, 3, 4, 5}},
		{"delay", []float64{1, 2, 3}, []float64{0, 0, 1}, []float64{0, 0, 1, 2, 3}},
		{"symmetric", []float64{1, 2, 1}, []float64{1, 2, 1}, []float64{1, 4, 6, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := FFT([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}

	if _, err := Circular([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {5, 3}, {100, 17}, {300, 129}} {
		a := testutil.DeterministicNoise(1, 1, size[0])
		b := testutil.DeterministicNoise(2, 1, size[1])

		want, err := Direct(a, b)
		if err != nil {
			t.Fatal(err)
		}

		got, err := FFT(a, b)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

		auto, _ := Convolve(a, b)
		testutil.RequireSliceNearlyEqual(t, auto, want, 1e-9)
	}
}

func TestCircular(t *testing.T) {
	got, err := Circular([]float64{1, 2, 3}, []float64{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 1, 2}, 1e-12)

	pow2, err := Circular([]float64{1, 0, 0, 0}, []float64{4, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, pow2, []float64{4, 3, 2, 1}, 1e-12)
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeFull, []float64{1, 3, 6, 9, 12, 9, 5}},
		{ModeSame, []float64{3, 6, 9, 12, 9}},
		{ModeValid, []float64{6, 9, 12}},
	}

	for _, tt := range tests {
		got, err := ConvolveMode(a, b, tt.mode)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
	}
}
