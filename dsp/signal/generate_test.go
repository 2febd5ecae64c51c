package signal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/internal/testutil"
)

func TestGeneratorRejectsInvalidInput(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	if _, err := g.Sine(10, 1, 0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}

	bad := NewGenerator(core.WithSampleRate(-1))
	if _, err := bad.Cosine(10, 1, 8); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}

	if _, err := g.Impulse(1, 4, 4); err == nil {
		t.Fatal("expected out-of-range impulse error")
	}

	if _, err := g.Multisine(nil, 1, 8); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTimeAxis(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(4))
	got, err := g.TimeAxis(4)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.25, 0.5, 0.75}, 1e-15)
}

func TestPeriodicShapes(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8))

	tests := []struct {
		name string
		gen  func(f, a float64, n int) ([]float64, error)
		want []float64
	}{
		{"cosine", g.Cosine, []float64{1, 0, -1, 0, 1, 0, -1, 0}},
		{"square", g.Square, []float64{1, 1, -1, -1, 1, 1, -1, -1}},
		{"sawtooth", g.Sawtooth, []float64{-1, -0.5, 0, 0.5, -1, -0.5, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.gen(2, 1, 8)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestToneMatchesCosineAndSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	tone, _ := g.Tone(60, 0.5, 64)
	re, _ := g.Cosine(60, 0.5, 64)
	im, _ := g.Sine(60, 0.5, 64)

	testutil.RequireSliceNearlyEqual(t, core.RealParts(tone), re, 1e-12)
	testutil.RequireSliceNearlyEqual(t, core.ImagParts(tone), im, 1e-12)

	for i, v := range tone {
		if math.Abs(cmplx.Abs(v)-0.5) > 1e-12 {
			t.Fatalf("|tone[%d]| = %v", i, cmplx.Abs(v))
		}
	}
}

func TestMultisineBounded(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	x, err := g.Multisine([]float64{100, 300, 700}, 0.9, 4096)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range x {
		if math.Abs(v) > 0.9+1e-12 {
			t.Fatalf("sample %d exceeds amplitude: %v", i, v)
		}
	}
}

func TestImpulseAndStep(t *testing.T) {
	g := NewGenerator()
	imp, err := g.Impulse(2, 5, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, imp, []float64{0, 2, 0, 0, 0}, 0)

	step, err := g.Step(1, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, step, []float64{0, 0, 0, 1, 1}, 0)
}

func TestLinearSweepStartsAtZero(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	x, err := g.LinearSweep(20, 2000, 1, 1024)
	if err != nil {
		t.Fatal(err)
	}

	if x[0] != 0 {
		t.Fatalf("x[0] = %v, want 0", x[0])
	}

	testutil.RequireFinite(t, x)
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatal(err)
	}

	n2, _ := g2.WhiteNoise(1, 16)
	testutil.RequireSliceNearlyEqual(t, n1, n2, 0)

	for i, v := range n1 {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}

func TestSetSeedChangesNoise(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)

	if g.Seed() != 99 {
		t.Fatalf("Seed() = %d, want 99", g.Seed())
	}

	a, _ := g.WhiteNoise(1, 8)
	g.SetSeed(100)
	b, _ := g.WhiteNoise(1, 8)

	if d, _ := testutil.MaxAbsDiff(a, b); d == 0 {
		t.Fatal("expected different seeds to produce different noise")
	}
}
