package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/dsp-course/dsp/core"
	"github.com/cwbudde/dsp-course/dsp/fourier"
)

var (
	ErrEmptyInput   = errors.New("spectrum: empty input")
	ErrInvalidSize  = errors.New("spectrum: transform size must be > 0")
	ErrInvalidRate  = errors.New("spectrum: sample rate must be > 0")
	ErrNoPositiveHz = errors.New("spectrum: no non-negative frequency bins")
)

// LevelDB transforms x over nfft points (zero-padding or truncating x),
// centres the bins with Shift and returns 10*log10(|X[k]|/len(x)) for each.
//
// Power-of-two nfft uses the radix-2 FFT; any other size falls back to the
// direct DFT. Empty bins come out as -Inf.
func LevelDB(x []float64, nfft int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if nfft <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, nfft)
	}

	buf := make([]complex128, nfft)
	for i := range min(len(x), nfft) {
		buf[i] = complex(x[i], 0)
	}

	spec, err := fourier.Transform(buf)
	if err != nil {
		return nil, fmt.Errorf("spectrum: transform: %w", err)
	}

	out := Magnitude(Shift(spec))
	norm := 1 / float64(len(x))

	for i, m := range out {
		out[i] = core.PowerToDB(m * norm)
	}

	return out, nil
}

// Result is a centred spectrum: Frequencies ascend from -fs/2 and LevelDB
// holds the matching levels.
type Result struct {
	Frequencies []float64
	LevelDB     []float64
}

// Analyze computes LevelDB over nfft points together with its frequency axis.
func Analyze(x []float64, nfft int, sampleRate float64) (Result, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	levels, err := LevelDB(x, nfft)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Frequencies: ShiftedFrequencies(nfft, sampleRate),
		LevelDB:     levels,
	}, nil
}

// Positive returns the half of r from 0 Hz upward.
func (r Result) Positive() Result {
	zero := len(r.Frequencies) / 2

	return Result{
		Frequencies: r.Frequencies[zero:],
		LevelDB:     r.LevelDB[zero:],
	}
}

// Peak returns the frequency and level of the strongest non-negative bin.
func (r Result) Peak() (freqHz, levelDB float64, err error) {
	pos := r.Positive()
	if len(pos.LevelDB) == 0 {
		return 0, 0, ErrNoPositiveHz
	}

	best := 0
	for i, v := range pos.LevelDB {
		if v > pos.LevelDB[best] {
			best = i
		}
	}

	return pos.Frequencies[best], pos.LevelDB[best], nil
}
