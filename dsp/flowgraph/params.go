package flowgraph

import (
	"fmt"
	"math"
)

// Params holds the decoded parameters of one block.
type Params struct {
	ID   string
	Kind string
	Num  map[string]float64
	Str  map[string]string
}

func parseParams(spec BlockSpec) Params {
	p := Params{
		ID:   spec.ID,
		Kind: spec.Kind,
		Num:  map[string]float64{},
		Str:  map[string]string{},
	}

	for k, v := range spec.Params {
		switch t := v.(type) {
		case float64:
			p.Num[k] = t
		case int:
			p.Num[k] = float64(t)
		case int64:
			p.Num[k] = float64(t)
		case uint64:
			p.Num[k] = float64(t)
		case string:
			p.Str[k] = t
		case bool:
			if t {
				p.Num[k] = 1
			} else {
				p.Num[k] = 0
			}
		}
	}

	return p
}

// GetNum returns the numeric parameter key, or def when it is missing or not finite.
func (p Params) GetNum(key string, def float64) float64 {
	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetInt returns the numeric parameter key truncated to an int.
func (p Params) GetInt(key string, def int) int {
	return int(p.GetNum(key, float64(def)))
}

// GetStr returns the string parameter key, or def.
func (p Params) GetStr(key, def string) string {
	if v, ok := p.Str[key]; ok && v != "" {
		return v
	}

	return def
}

// positive returns the parameter key, failing unless it is > 0.
func (p Params) positive(key string, def float64) (float64, error) {
	v := p.GetNum(key, def)
	if !(v > 0) {
		return 0, fmt.Errorf("%w: %s.%s must be > 0, got %g", ErrInvalidParameter, p.ID, key, v)
	}

	return v, nil
}
