// Package signal generates deterministic test signals and provides simple
// sample-wise arithmetic on them.
package signal
