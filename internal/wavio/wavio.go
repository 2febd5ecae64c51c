// Package wavio reads and writes PCM WAV files as normalised float samples.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

var (
	ErrBitDepth    = errors.New("wavio: bit depth must be 16, 24 or 32")
	ErrSampleRate  = errors.New("wavio: sample rate must be > 0")
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	ErrNotIQ       = errors.New("wavio: IQ data needs exactly two channels")
)

// Clip is decoded audio with one slice per channel, samples in [-1, 1].
type Clip struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// IQ pairs the two channels of a stereo clip into complex samples, I on
// the left and Q on the right.
func (c *Clip) IQ() ([]complex128, error) {
	if len(c.Channels) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotIQ, len(c.Channels))
	}

	out := make([]complex128, len(c.Channels[0]))
	for i := range out {
		out[i] = complex(c.Channels[0][i], c.Channels[1][i])
	}

	return out, nil
}

// Write stores mono samples. Values outside [-1, 1] are clipped.
func Write(path string, samples []float64, sampleRate, bitDepth int) error {
	return write(path, [][]float64{samples}, sampleRate, bitDepth)
}

// WriteIQ stores complex samples as a two-channel file.
func WriteIQ(path string, iq []complex128, sampleRate, bitDepth int) error {
	i := make([]float64, len(iq))
	q := make([]float64, len(iq))

	for n, v := range iq {
		i[n], q[n] = real(v), imag(v)
	}

	return write(path, [][]float64{i, q}, sampleRate, bitDepth)
}

func write(path string, channels [][]float64, sampleRate, bitDepth int) (err error) {
	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}

	full := fullScale(bitDepth)
	frames := len(channels[0])
	data := make([]int, frames*len(channels))

	for n := range frames {
		for c, ch := range channels {
			v := max(-1, min(1, ch[n]))
			data[n*len(channels)+c] = int(math.Round(v * full))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("wavio: %w", cerr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return nil
}

// Read decodes the whole file at path.
func Read(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode %s: %w", path, err)
	}

	numChans := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	full := fullScale(bitDepth)

	clip := &Clip{
		SampleRate: int(dec.SampleRate),
		BitDepth:   bitDepth,
		Channels:   make([][]float64, numChans),
	}

	frames := len(buf.Data) / numChans
	for c := range clip.Channels {
		clip.Channels[c] = make([]float64, frames)
	}

	for n := range frames {
		for c := range numChans {
			clip.Channels[c][n] = float64(buf.Data[n*numChans+c]) / full
		}
	}

	return clip, nil
}

func fullScale(bitDepth int) float64 {
	return math.Exp2(float64(bitDepth-1)) - 1
}
