// Package fir designs windowed-sinc FIR filters and runs them.
//
// A [Filter] applies pre-computed taps to a sample stream through a
// circular delay line. [LowPass], [HighPass], [BandPass] and [BandStop]
// compute those taps by windowing an ideal sinc response, and
// [FrequencyResponse] evaluates the resulting transfer function on a
// uniform grid.
package fir
