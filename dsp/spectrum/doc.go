// Package spectrum turns complex DFT bins into the views used for reading
// a spectrum: magnitude, power, phase, centred (shifted) ordering, a
// matching frequency axis in Hz, and dB levels.
//
// Transforms come from package fourier. [Goertzel] evaluates a single bin
// without computing the whole transform.
package spectrum
