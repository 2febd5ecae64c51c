package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/dsp-course/dsp/window"
	"github.com/cwbudde/dsp-course/internal/testutil"
)

const fs = 8000

func gainDB(t *testing.T, taps []float64, freqHz float64) float64 {
	t.Helper()
	return New(taps).MagnitudeDB(freqHz, fs)
}

func requireSymmetric(t *testing.T, h []float64) {
	t.Helper()

	for i := range h {
		if math.Abs(h[i]-h[len(h)-1-i]) > 1e-12 {
			t.Fatalf("taps not symmetric at %d", i)
		}
	}
}

func TestLowPassKnownTaps(t *testing.T) {
	h, err := LowPass(3, 2000, fs, window.TypeRectangular)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, h, []float64{0.2800495767557787, 0.4399008464884426, 0.2800495767557787}, 1e-12)
}

func TestLowPass(t *testing.T) {
	h, err := LowPass(31, 1000, fs, window.TypeHamming)
	if err != nil {
		t.Fatal(err)
	}

	requireSymmetric(t, h)

	sum := 0.0
	for _, v := range h {
		sum += v
	}

	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("DC gain = %v, want 1", sum)
	}

	if g := gainDB(t, h, 300); math.Abs(g) > 0.1 {
		t.Errorf("passband gain = %v dB", g)
	}

	if g := gainDB(t, h, 1000); g < -7 || g > -5 {
		t.Errorf("cutoff gain = %v dB, want about -6", g)
	}

	if g := gainDB(t, h, 2500); g > -40 {
		t.Errorf("stopband gain = %v dB", g)
	}
}

func TestHighPass(t *testing.T) {
	h, err := HighPass(31, 2000, fs, window.TypeHamming)
	if err != nil {
		t.Fatal(err)
	}

	requireSymmetric(t, h)

	if g := gainDB(t, h, fs/2); math.Abs(g) > 1e-9 {
		t.Errorf("Nyquist gain = %v dB, want 0", g)
	}

	if g := gainDB(t, h, 200); g > -40 {
		t.Errorf("stopband gain = %v dB", g)
	}

	if _, err := HighPass(30, 2000, fs, window.TypeHamming); !errors.Is(err, ErrEvenTaps) {
		t.Fatalf("expected ErrEvenTaps, got %v", err)
	}
}

func TestBandPass(t *testing.T) {
	h, err := BandPass(63, 1000, 2000, fs, window.TypeHamming)
	if err != nil {
		t.Fatal(err)
	}

	if g := gainDB(t, h, 1500); math.Abs(g) > 1e-9 {
		t.Errorf("centre gain = %v dB, want 0", g)
	}

	for _, f := range []float64{0, 200, 3500, 4000} {
		if g := gainDB(t, h, f); g > -40 {
			t.Errorf("gain at %v Hz = %v dB", f, g)
		}
	}
}

func TestBandStop(t *testing.T) {
	h, err := BandStop(63, 1000, 2000, fs, window.TypeBlackman)
	if err != nil {
		t.Fatal(err)
	}

	if g := gainDB(t, h, 0); math.Abs(g) > 1e-9 {
		t.Errorf("DC gain = %v dB, want 0", g)
	}

	if g := gainDB(t, h, 1500); g > -30 {
		t.Errorf("stopband gain = %v dB", g)
	}

	if g := gainDB(t, h, 3900); math.Abs(g) > 0.1 {
		t.Errorf("upper passband gain = %v dB", g)
	}
}

func TestDesignRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"zero taps", func() error { _, err := LowPass(0, 1000, fs, window.TypeHann); return err }, ErrInvalidTaps},
		{"zero rate", func() error { _, err := LowPass(11, 1000, 0, window.TypeHann); return err }, ErrInvalidRate},
		{"cutoff zero", func() error { _, err := LowPass(11, 0, fs, window.TypeHann); return err }, ErrInvalidCutoff},
		{"cutoff nyquist", func() error { _, err := LowPass(11, fs/2, fs, window.TypeHann); return err }, ErrInvalidCutoff},
		{"inverted band", func() error { _, err := BandPass(11, 2000, 1000, fs, window.TypeHann); return err }, ErrInvalidBand},
		{"even band stop", func() error { _, err := BandStop(10, 1000, 2000, fs, window.TypeHann); return err }, ErrEvenTaps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
