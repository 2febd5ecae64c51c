package fir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

const eps = 1e-12

func TestNewCopiesTaps(t *testing.T) {
	taps := []float64{0.25, 0.5, 0.25}
	f := New(taps)

	if f.Order() != 2 {
		t.Fatalf("Order = %d, want 2", f.Order())
	}

	testutil.RequireSliceNearlyEqual(t, f.Coefficients(), taps, 0)

	taps[0] = 999
	if f.taps[0] == 999 {
		t.Fatal("New did not copy taps")
	}

	got := f.Coefficients()
	got[1] = -1

	if f.taps[1] != 0.5 {
		t.Fatal("Coefficients did not return a copy")
	}
}

func TestImpulseResponseEqualsTaps(t *testing.T) {
	taps := []float64{0.1, -0.2, 0.4, 0.3}
	f := New(taps)

	out := make([]float64, 8)
	f.ProcessBlockTo(out, testutil.Impulse(8, 0))

	testutil.RequireSliceNearlyEqual(t, out, []float64{0.1, -0.2, 0.4, 0.3, 0, 0, 0, 0}, eps)
}

func TestMovingAverage(t *testing.T) {
	f := New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	buf := []float64{3, 3, 3, 3}
	f.ProcessBlock(buf)

	testutil.RequireSliceNearlyEqual(t, buf, []float64{1, 2, 3, 3}, eps)
}

func TestBlockMatchesSample(t *testing.T) {
	taps := []float64{0.5, 0.3, -0.1, 0.05, 0.2}
	x := testutil.DeterministicNoise(11, 1, 64)

	ref := New(taps)
	want := make([]float64, len(x))

	for i, v := range x {
		want[i] = ref.ProcessSample(v)
	}

	got := append([]float64(nil), x...)
	New(taps).ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, eps)
}

func TestReset(t *testing.T) {
	f := New([]float64{1, 1})
	f.ProcessSample(5)
	f.Reset()

	if y := f.ProcessSample(1); y != 1 {
		t.Fatalf("after Reset got %v, want 1", y)
	}
}

func TestEmptyFilter(t *testing.T) {
	f := New(nil)
	if y := f.ProcessSample(1); y != 0 {
		t.Fatalf("empty filter output = %v", y)
	}
}

func TestResponse(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})

	if h := f.Response(0, 48000); !almostComplex(h, 1) {
		t.Fatalf("DC response = %v, want 1", h)
	}

	if h := f.Response(24000, 48000); cmplx.Abs(h) > eps {
		t.Fatalf("Nyquist response = %v, want 0", h)
	}

	diff := New([]float64{1, -1})
	if db := diff.MagnitudeDB(0, 48000); !math.IsInf(db, -1) {
		t.Fatalf("differentiator DC = %v dB, want -Inf", db)
	}

	want := 20 * math.Log10(cmplx.Abs(f.Response(1000, 48000)))
	if got := f.MagnitudeDB(1000, 48000); math.Abs(got-want) > eps {
		t.Fatalf("MagnitudeDB = %v, want %v", got, want)
	}
}

func almostComplex(a, b complex128) bool {
	return cmplx.Abs(a-b) <= eps
}
