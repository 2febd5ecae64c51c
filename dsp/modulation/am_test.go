package modulation

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

func TestAM(t *testing.T) {
	msg := []float64{0, 1, -1, 0.5}

	got, err := AM(msg, 0, 8000, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1.5, 0.5, 1.25}, 1e-15)

	if _, err := AM(msg, 1000, 0, 0.5); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}

	if _, err := AM(msg, 1000, 8000, 0); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestMixShiftsTone(t *testing.T) {
	const fs = 1000

	x := make([]complex128, 16)
	for n := range x {
		x[n] = 1
	}

	y, err := Mix(x, 250, fs)
	if err != nil {
		t.Fatal(err)
	}

	want := []complex128{1, 1i, -1, -1i}
	for n := range want {
		if cmplx.Abs(y[n]-want[n]) > 1e-12 {
			t.Fatalf("y[%d] = %v, want %v", n, y[n], want[n])
		}
	}

	back, _ := Mix(y, -250, fs)
	testutil.RequireComplexSliceNearlyEqual(t, back, x, 1e-12)
}

func TestEnvelope(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Envelope([]complex128{3 + 4i, -2, 1i}), []float64{5, 2, 1}, 1e-12)
}

func TestAnalyticOfCosine(t *testing.T) {
	const n = 64

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 5 * float64(i) / n)
	}

	a, err := Analytic(x)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range a {
		want := cmplx.Rect(1, 2*math.Pi*5*float64(i)/n)
		if cmplx.Abs(v-want) > 1e-9 {
			t.Fatalf("a[%d] = %v, want %v", i, v, want)
		}
	}

	if _, err := Analytic(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAMRoundTrip(t *testing.T) {
	const (
		fs    = 8000
		n     = 800
		index = 0.6
	)

	msg := testutil.DeterministicSine(100, fs, 1, n)

	s, err := AM(msg, 1000, fs, index)
	if err != nil {
		t.Fatal(err)
	}

	got, err := AMDemodulate(s, index)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, msg, 1e-9)
}
