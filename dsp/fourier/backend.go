package fourier

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer is a forward complex transform engine.
type Transformer interface {
	// Name is the short identifier used by BackendByName.
	Name() string
	// Forward returns the spectrum of x without modifying x.
	Forward(x []complex128) ([]complex128, error)
}

// Direct is the O(N^2) DFT.
type Direct struct{}

func (Direct) Name() string { return "dft" }

func (Direct) Forward(x []complex128) ([]complex128, error) { return DFT(x) }

// Recursive is the radix-2 FFT in this package.
type Recursive struct{}

func (Recursive) Name() string { return "fft" }

func (Recursive) Forward(x []complex128) ([]complex128, error) { return FFT(x) }

// planCache builds one plan per transform size and reuses it.
type planCache[P any] struct {
	mu    sync.Mutex
	plans map[int]P
	build func(n int) (P, error)
}

func newPlanCache[P any](build func(n int) (P, error)) *planCache[P] {
	return &planCache[P]{plans: make(map[int]P), build: build}
}

func (c *planCache[P]) get(n int) (P, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.plans[n]; ok {
		return p, nil
	}

	p, err := c.build(n)
	if err != nil {
		return p, err
	}

	c.plans[n] = p

	return p, nil
}

// AlgoFFT runs transforms through algo-fft plans.
type AlgoFFT struct {
	mu    sync.Mutex
	plans *planCache[*algofft.Plan[complex128]]
}

// NewAlgoFFT returns an AlgoFFT backend with an empty plan cache.
func NewAlgoFFT() *AlgoFFT {
	return &AlgoFFT{plans: newPlanCache(func(n int) (*algofft.Plan[complex128], error) {
		return algofft.NewPlan64(n)
	})}
}

func (*AlgoFFT) Name() string { return "algo-fft" }

func (a *AlgoFFT) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := a.plans.get(len(x))
	if err != nil {
		return nil, fmt.Errorf("fourier: algo-fft plan for %d points: %w", len(x), err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]complex128, len(x))
	if err := plan.Forward(out, slices.Clone(x)); err != nil {
		return nil, fmt.Errorf("fourier: algo-fft forward: %w", err)
	}

	return out, nil
}

// Gonum runs transforms through gonum's dsp/fourier package.
type Gonum struct {
	mu    sync.Mutex
	plans *planCache[*fourier.CmplxFFT]
}

// NewGonum returns a Gonum backend with an empty plan cache.
func NewGonum() *Gonum {
	return &Gonum{plans: newPlanCache(func(n int) (*fourier.CmplxFFT, error) {
		return fourier.NewCmplxFFT(n), nil
	})}
}

func (*Gonum) Name() string { return "gonum" }

func (g *Gonum) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := g.plans.get(len(x))
	if err != nil {
		return nil, err
	}

	// CmplxFFT keeps internal work space and is not safe for concurrent use.
	g.mu.Lock()
	defer g.mu.Unlock()

	return plan.Coefficients(nil, x), nil
}

// GoDSP runs transforms through github.com/mjibson/go-dsp/fft.
type GoDSP struct{}

func (GoDSP) Name() string { return "go-dsp" }

func (GoDSP) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	return dspfft.FFT(slices.Clone(x)), nil
}

// Backends returns every available transformer, textbook kernels first.
func Backends() []Transformer {
	return []Transformer{Direct{}, Recursive{}, NewAlgoFFT(), NewGonum(), GoDSP{}}
}

// BackendByName resolves a case-insensitive backend name.
func BackendByName(name string) (Transformer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends() {
		if b.Name() == key {
			return b, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// BackendNames lists the names accepted by BackendByName.
func BackendNames() []string {
	backends := Backends()

	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}

	return names
}
