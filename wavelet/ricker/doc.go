// Package ricker converts between the two common parameterizations of a
// Ricker wavelet: the peak (dominant) frequency f of the standard
// time-domain form
//
//	r(t) = (1 - 2·π²·f²·t²) · exp(-π²·f²·t²)
//
// and the time span L between the two zero crossings bracketing t = 0.
// The zero crossings solve 1 - 2·π²·f²·t² = 0, giving t = ±1/(π·f·√2), so
//
//	L = √2 / (π·f)    and inversely    f = √2 / (π·L)
//
// A half-span variant in milliseconds (1000·L/2) is provided as well,
// matching how the span is commonly read off a plotted wavelet.
//
// # Usage
//
// Convert a single value:
//
//	length, err := ricker.ZeroCrossingLengthFromPeakFreq(30) // 0.015005 s
//
// Slice forms apply the same mapping element-wise and return a new slice,
// preserving order and leaving the input untouched:
//
//	spans, err := ricker.HalfZeroCrossingMsFromPeakFreqSlice([]float64{10, 20, 40})
//
// Every input value must be strictly positive. A zero or negative value,
// anywhere in a slice, fails the whole call with an error wrapping
// ErrNonPositive before any output is produced.
package ricker
