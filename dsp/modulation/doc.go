// Package modulation implements the AM and FM building blocks of a simple
// software-defined radio chain on complex baseband (IQ) samples.
package modulation
