package sampling

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

func TestSample(t *testing.T) {
	tt, x, err := Sample(SineWave(1, 1, 0), 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, tt, []float64{0, 0.25, 0.5, 0.75}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, x, []float64{0, 1, 0, -1}, 1e-12)
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		rate, duration float64
		want           int
	}{
		{8000, 0.1, 800},
		{44100, 1, 44100},
		{10, 0.35, 3},
	}

	for _, tc := range tests {
		_, x, err := Sample(SineWave(1, 1, 0), tc.rate, tc.duration)
		if err != nil {
			t.Fatal(err)
		}

		if len(x) != tc.want {
			t.Errorf("rate=%v duration=%v: got %d samples, want %d", tc.rate, tc.duration, len(x), tc.want)
		}
	}
}

func TestSampleRejectsInvalid(t *testing.T) {
	w := SineWave(1, 1, 0)

	if _, _, err := Sample(w, 0, 1); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}

	if _, _, err := Sample(w, 10, -1); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}

	if _, _, err := Sample(w, 10, 0.01); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for empty result, got %v", err)
	}
}

func TestAliasFrequency(t *testing.T) {
	tests := []struct {
		f, rate, want float64
		aliased       bool
	}{
		{100, 1000, 100, false},
		{500, 1000, 500, false},
		{600, 1000, 400, true},
		{900, 1000, 100, true},
		{1100, 1000, 100, true},
		{-300, 1000, 300, false},
	}

	for _, tc := range tests {
		if got := AliasFrequency(tc.f, tc.rate); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("AliasFrequency(%v, %v) = %v, want %v", tc.f, tc.rate, got, tc.want)
		}

		if got := IsAliased(tc.f, tc.rate); got != tc.aliased {
			t.Errorf("IsAliased(%v, %v) = %v, want %v", tc.f, tc.rate, got, tc.aliased)
		}
	}

	if Nyquist(8000) != 4000 {
		t.Fatal("Nyquist(8000) != 4000")
	}
}

func TestAliasedSamplesAreIndistinguishable(t *testing.T) {
	const rate = 1000

	_, hi, _ := Sample(SineWave(900, 1, 0), rate, 0.05)
	_, lo, _ := Sample(SineWave(100, 1, math.Pi), rate, 0.05)

	testutil.RequireSliceNearlyEqual(t, hi, lo, 1e-9)
}
