package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/dsp-course/internal/testutil"
)

func BenchmarkConvolution(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)

	for _, m := range []int{16, 128, 1024} {
		h := testutil.DeterministicNoise(2, 1, m)

		b.Run(fmt.Sprintf("direct/kernel=%d", m), func(b *testing.B) {
			for b.Loop() {
				_, _ = Direct(x, h)
			}
		})

		b.Run(fmt.Sprintf("fft/kernel=%d", m), func(b *testing.B) {
			for b.Loop() {
				_, _ = FFT(x, h)
			}
		})
	}
}
