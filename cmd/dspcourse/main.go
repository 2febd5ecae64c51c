// Command dspcourse is a command-line lab for the dsp-course packages.
//
// Usage:
//
//	dspcourse [--config file] [--log-level level] [--sample-rate hz] <command> [flags]
//
// Examples:
//
//	dspcourse transform 1 1 1 1 0 0 0 0
//	dspcourse compare --sizes 8,64,512,1000
//	dspcourse spectrum --freq 1000 --nfft 256
//	dspcourse sample --freq 7000 --rate 8000 --wav alias.wav
//	dspcourse quantize --bits 4
//	dspcourse filter --type lowpass --taps 31 --cutoff 1000
//	dspcourse window hann kaiser
//	dspcourse flowgraph run receiver.yaml --wav-dir out
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
