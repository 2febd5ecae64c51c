package fourier

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

const tol = 1e-6

func TestFFTMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 1024} {
		x := testutil.DeterministicComplexNoise(int64(n), 1, n)

		want, err := DFT(x)
		if err != nil {
			t.Fatalf("N=%d: DFT() error = %v", n, err)
		}

		got, err := FFT(x)
		if err != nil {
			t.Fatalf("N=%d: FFT() error = %v", n, err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, got, want, tol)
	}
}

func TestEightPointHalfOnes(t *testing.T) {
	x := []complex128{1, 1, 1, 1, 0, 0, 0, 0}

	dftOut, err := DFT(x)
	if err != nil {
		t.Fatalf("DFT() error = %v", err)
	}

	fftOut, err := FFT(x)
	if err != nil {
		t.Fatalf("FFT() error = %v", err)
	}

	if cmplx.Abs(dftOut[0]-4) > 1e-12 {
		t.Fatalf("DFT[0] = %v, want 4+0i", dftOut[0])
	}

	// X[1] = 1 + e^{-i pi/4} + e^{-i pi/2} + e^{-i 3pi/4} = 1 - (1+sqrt2)i
	if want := complex(1, -(1 + math.Sqrt2)); cmplx.Abs(dftOut[1]-want) > 1e-12 {
		t.Fatalf("DFT[1] = %v, want %v", dftOut[1], want)
	}

	for _, k := range []int{2, 4, 6} {
		if cmplx.Abs(dftOut[k]) > 1e-12 {
			t.Fatalf("DFT[%d] = %v, want 0", k, dftOut[k])
		}
	}

	round6 := func(v float64) float64 { return math.Round(v*1e6) / 1e6 }
	for k := range x {
		if round6(real(fftOut[k])) != round6(real(dftOut[k])) ||
			round6(imag(fftOut[k])) != round6(imag(dftOut[k])) {
			t.Fatalf("bin %d: FFT %v != DFT %v to 6 decimals", k, fftOut[k], dftOut[k])
		}
	}
}

func TestFFTBaseCase(t *testing.T) {
	for _, c := range []complex128{0, 1, -2.5 + 3i, complex(math.Pi, -math.E)} {
		got, err := FFT([]complex128{c})
		if err != nil {
			t.Fatalf("FFT([%v]) error = %v", c, err)
		}

		if len(got) != 1 || got[0] != c {
			t.Fatalf("FFT([%v]) = %v, want [%v]", c, got, c)
		}
	}
}

func TestConstantSequence(t *testing.T) {
	const c = 0.75 - 0.25i

	for _, n := range []int{1, 3, 5, 8, 12, 16} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = c
		}

		got, err := DFT(x)
		if err != nil {
			t.Fatalf("N=%d: DFT() error = %v", n, err)
		}

		if want := complex(float64(n), 0) * c; cmplx.Abs(got[0]-want) > tol {
			t.Fatalf("N=%d: X[0] = %v, want %v", n, got[0], want)
		}

		for k := 1; k < n; k++ {
			if cmplx.Abs(got[k]) > tol {
				t.Fatalf("N=%d: X[%d] = %v, want 0", n, k, got[k])
			}
		}
	}
}

func TestLinearity(t *testing.T) {
	const (
		a = 2 - 1i
		b = -0.5 + 3i
	)

	transforms := []struct {
		name string
		fn   func([]complex128) ([]complex128, error)
		n    int
	}{
		{name: "dft", fn: DFT, n: 10},
		{name: "fft", fn: FFT, n: 32},
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			x := testutil.DeterministicComplexNoise(1, 1, tt.n)
			y := testutil.DeterministicComplexNoise(2, 1, tt.n)

			mix := make([]complex128, tt.n)
			for i := range mix {
				mix[i] = a*x[i] + b*y[i]
			}

			lhs, err := tt.fn(mix)
			if err != nil {
				t.Fatalf("transform(mix) error = %v", err)
			}

			tx, _ := tt.fn(x)
			ty, _ := tt.fn(y)

			rhs := make([]complex128, tt.n)
			for i := range rhs {
				rhs[i] = a*tx[i] + b*ty[i]
			}

			testutil.RequireComplexSliceNearlyEqual(t, lhs, rhs, tol)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("dft", func(t *testing.T) {
		x := testutil.DeterministicComplexNoise(3, 1, 7)

		spec, err := DFT(x)
		if err != nil {
			t.Fatalf("DFT() error = %v", err)
		}

		back, err := IDFT(spec)
		if err != nil {
			t.Fatalf("IDFT() error = %v", err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, back, x, tol)
	})

	t.Run("fft", func(t *testing.T) {
		x := testutil.DeterministicComplexNoise(4, 1, 64)

		spec, err := FFT(x)
		if err != nil {
			t.Fatalf("FFT() error = %v", err)
		}

		back, err := IFFT(spec)
		if err != nil {
			t.Fatalf("IFFT() error = %v", err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, back, x, tol)
	})
}

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	x := make([]complex128, 6)

	for name, fn := range map[string]func([]complex128) ([]complex128, error){"FFT": FFT, "IFFT": IFFT} {
		out, err := fn(x)
		if out != nil {
			t.Fatalf("%s: expected nil output, got %v", name, out)
		}

		var lenErr *InvalidLengthError
		if !errors.As(err, &lenErr) {
			t.Fatalf("%s: error = %v, want *InvalidLengthError", name, err)
		}

		if lenErr.Len != 6 {
			t.Fatalf("%s: Len = %d, want 6", name, lenErr.Len)
		}

		if !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("%s: errors.Is(err, ErrInvalidLength) = false", name)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for name, fn := range map[string]func([]complex128) ([]complex128, error){
		"DFT": DFT, "IDFT": IDFT, "FFT": FFT, "IFFT": IFFT,
	} {
		if _, err := fn(nil); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s(nil) error = %v, want ErrEmptyInput", name, err)
		}
	}
}

func TestInputNotModified(t *testing.T) {
	x := testutil.DeterministicComplexNoise(5, 1, 16)
	orig := slices.Clone(x)

	if _, err := FFT(x); err != nil {
		t.Fatal(err)
	}

	if _, err := DFT(x); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(x, orig) {
		t.Fatal("transform modified its input")
	}
}

func TestPureToneLandsInItsBin(t *testing.T) {
	const n, bin = 16, 3

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * bin * float64(i) / n)
	}

	got, err := RealFFT(x)
	if err != nil {
		t.Fatalf("RealFFT() error = %v", err)
	}

	for k, v := range got {
		want := 0.0
		if k == bin || k == n-bin {
			want = n / 2
		}

		if math.Abs(cmplx.Abs(v)-want) > tol {
			t.Fatalf("|X[%d]| = %v, want %v", k, cmplx.Abs(v), want)
		}
	}

	viaDFT, err := RealDFT(x)
	if err != nil {
		t.Fatalf("RealDFT() error = %v", err)
	}

	testutil.RequireComplexSliceNearlyEqual(t, got, viaDFT, tol)
}

func TestTransformDispatch(t *testing.T) {
	for _, n := range []int{6, 8} {
		x := testutil.DeterministicComplexNoise(int64(10+n), 1, n)

		got, err := Transform(x)
		if err != nil {
			t.Fatalf("N=%d: Transform() error = %v", n, err)
		}

		want, _ := DFT(x)
		testutil.RequireComplexSliceNearlyEqual(t, got, want, tol)

		back, err := InverseTransform(got)
		if err != nil {
			t.Fatalf("N=%d: InverseTransform() error = %v", n, err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, back, x, tol)
	}
}

func TestOperationCount(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		n    int
		want int
	}{
		{alg: AlgorithmDFT, n: 8, want: 64},
		{alg: AlgorithmDFT, n: 6, want: 36},
		{alg: AlgorithmFFT, n: 1, want: 0},
		{alg: AlgorithmFFT, n: 8, want: 12},
		{alg: AlgorithmFFT, n: 1024, want: 5120},
		{alg: AlgorithmFFT, n: 6, want: -1},
		{alg: AlgorithmDFT, n: 0, want: 0},
		{alg: Algorithm(9), n: 8, want: -1},
	}

	for _, tt := range tests {
		if got := OperationCount(tt.alg, tt.n); got != tt.want {
			t.Errorf("OperationCount(%v, %d) = %d, want %d", tt.alg, tt.n, got, tt.want)
		}
	}
}

func TestMaxDeviation(t *testing.T) {
	d, err := MaxDeviation([]complex128{1, 2i}, []complex128{1, 2i + 0.5})
	if err != nil {
		t.Fatalf("MaxDeviation() error = %v", err)
	}

	if math.Abs(d-0.5) > 1e-15 {
		t.Fatalf("MaxDeviation() = %v, want 0.5", d)
	}

	if _, err := MaxDeviation([]complex128{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}
