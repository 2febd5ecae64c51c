package conv_test

import (
	"fmt"

	"github.com/cwbudde/dsp-course/dsp/conv"
)

func ExampleDirect() {
	y, err := conv.Direct([]float64{1, 2, 3}, []float64{1, 1})
	if err != nil {
		panic(err)
	}

	fmt.Println(y)
	// Output: [1 3 5 3]
}

func ExampleFFT() {
	y, err := conv.FFT([]float64{1, 2, 3}, []float64{1, 1})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.3f\n", y)
	// Output: [1.000 3.000 5.000 3.000]
}
