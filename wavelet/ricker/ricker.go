package ricker

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// conversionFactor relates the two parameterizations: L·f = √2/π.
	conversionFactor = math.Sqrt2 / math.Pi

	msPerSecond = 1000.0
)

// ZeroCrossingLengthFromPeakFreq returns the time span in seconds between
// the two zero crossings bracketing t=0 for a Ricker wavelet with peak
// frequency freqHz.
func ZeroCrossingLengthFromPeakFreq(freqHz float64) (float64, error) {
	if err := validatePositive("frequency", freqHz); err != nil {
		return 0, err
	}

	return conversionFactor / freqHz, nil
}

// PeakFreqFromZeroCrossingLength inverts the zero-crossing span lengthSec
// (seconds) back to the peak frequency in Hz. It is the exact inverse of
// ZeroCrossingLengthFromPeakFreq up to floating-point rounding.
func PeakFreqFromZeroCrossingLength(lengthSec float64) (float64, error) {
	if err := validatePositive("length", lengthSec); err != nil {
		return 0, err
	}

	return conversionFactor / lengthSec, nil
}

// HalfZeroCrossingMsFromPeakFreq returns half the zero-crossing span in
// milliseconds, i.e. 1000·L/2 for L = √2/(π·f).
func HalfZeroCrossingMsFromPeakFreq(freqHz float64) (float64, error) {
	length, err := ZeroCrossingLengthFromPeakFreq(freqHz)
	if err != nil {
		return 0, err
	}

	return length * (msPerSecond / 2), nil
}

// PeakFreqFromHalfZeroCrossingMs inverts a half zero-crossing span halfMs
// (milliseconds) back to the peak frequency in Hz.
func PeakFreqFromHalfZeroCrossingMs(halfMs float64) (float64, error) {
	if err := validatePositive("half span", halfMs); err != nil {
		return 0, err
	}

	return conversionFactor / (2 * halfMs / msPerSecond), nil
}

// ZeroCrossingLengthFromPeakFreqSlice applies
// ZeroCrossingLengthFromPeakFreq element-wise. It returns a new slice of
// the same length and order; freqsHz is never modified. If any element is
// zero or negative the call fails without producing a result.
func ZeroCrossingLengthFromPeakFreqSlice(freqsHz []float64) ([]float64, error) {
	if err := validatePositiveSlice("frequency", freqsHz); err != nil {
		return nil, err
	}

	out := make([]float64, len(freqsHz))
	for i, f := range freqsHz {
		out[i] = conversionFactor / f
	}

	return out, nil
}

// PeakFreqFromZeroCrossingLengthSlice applies
// PeakFreqFromZeroCrossingLength element-wise.
func PeakFreqFromZeroCrossingLengthSlice(lengthsSec []float64) ([]float64, error) {
	if err := validatePositiveSlice("length", lengthsSec); err != nil {
		return nil, err
	}

	out := make([]float64, len(lengthsSec))
	for i, l := range lengthsSec {
		out[i] = conversionFactor / l
	}

	return out, nil
}

// HalfZeroCrossingMsFromPeakFreqSlice applies
// HalfZeroCrossingMsFromPeakFreq element-wise. The seconds→milliseconds
// unit scaling runs as a single block pass over the result.
func HalfZeroCrossingMsFromPeakFreqSlice(freqsHz []float64) ([]float64, error) {
	out, err := ZeroCrossingLengthFromPeakFreqSlice(freqsHz)
	if err != nil {
		return nil, err
	}

	vecmath.ScaleBlockInPlace(out, msPerSecond/2)

	return out, nil
}

// PeakFreqFromHalfZeroCrossingMsSlice applies
// PeakFreqFromHalfZeroCrossingMs element-wise.
func PeakFreqFromHalfZeroCrossingMsSlice(halfMs []float64) ([]float64, error) {
	if err := validatePositiveSlice("half span", halfMs); err != nil {
		return nil, err
	}

	out := make([]float64, len(halfMs))
	for i, h := range halfMs {
		out[i] = conversionFactor / (2 * h / msPerSecond)
	}

	return out, nil
}
