package modulation_test

import (
	"fmt"

	"github.com/cwbudde/dsp-course/dsp/modulation"
)

func ExampleFMDemodulator_Demodulate() {
	mod, _ := modulation.NewFMModulator(2000, 16000)
	demod, _ := modulation.NewFMDemodulator(2000, 16000)

	out := demod.Demodulate(mod.Modulate([]float64{0.5, -0.25, 1}))
	fmt.Printf("%.2f %.2f %.2f\n", out[0], out[1], out[2])
	// Output: 0.50 -0.25 1.00
}
