// Package window generates the tapering windows used for FIR design and
// spectral analysis, and measures their leakage properties.
package window
