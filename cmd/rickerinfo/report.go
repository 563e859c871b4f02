package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-ricker/wavelet/ricker"
)

type selector int

const (
	selNone selector = iota
	selFreq
	selLength
	selHalfMs
)

var errSelector = errors.New("exactly one of -freq, -length, -half-ms must be given")

// pickSelector maps the three flag values onto the single requested
// conversion input. The set booleans report whether each flag appeared on
// the command line, so an explicit unusable value is still attributed to
// its flag rather than treated as absent.
func pickSelector(freq, length, halfMs float64, freqSet, lengthSet, halfMsSet bool) (selector, float64, error) {
	sel := selNone
	value := 0.0

	if freqSet {
		sel, value = selFreq, freq
	}
	if lengthSet {
		if sel != selNone {
			return selNone, 0, errSelector
		}
		sel, value = selLength, length
	}
	if halfMsSet {
		if sel != selNone {
			return selNone, 0, errSelector
		}
		sel, value = selHalfMs, halfMs
	}

	if sel == selNone {
		return selNone, 0, errSelector
	}

	return sel, value, nil
}

// report derives the other two parameterizations for the selected input and
// returns the formatted output lines.
func report(sel selector, value float64, precision int) ([]string, error) {
	fv := func(x float64) string {
		return strconv.FormatFloat(x, 'f', precision, 64)
	}

	switch sel {
	case selFreq:
		length, err := ricker.ZeroCrossingLengthFromPeakFreq(value)
		if err != nil {
			return nil, err
		}
		halfMs, err := ricker.HalfZeroCrossingMsFromPeakFreq(value)
		if err != nil {
			return nil, err
		}
		return []string{
			"Input frequency (Hz): " + fv(value),
			"Zero-crossing length L (s): " + fv(length),
			"Half zero-crossing span (ms): " + fv(halfMs),
		}, nil

	case selLength:
		freq, err := ricker.PeakFreqFromZeroCrossingLength(value)
		if err != nil {
			return nil, err
		}
		halfMs, err := ricker.HalfZeroCrossingMsFromPeakFreq(freq)
		if err != nil {
			return nil, err
		}
		return []string{
			"Input zero-crossing length L (s): " + fv(value),
			"Frequency (Hz): " + fv(freq),
			"Half zero-crossing span (ms): " + fv(halfMs),
		}, nil

	case selHalfMs:
		freq, err := ricker.PeakFreqFromHalfZeroCrossingMs(value)
		if err != nil {
			return nil, err
		}
		length, err := ricker.ZeroCrossingLengthFromPeakFreq(freq)
		if err != nil {
			return nil, err
		}
		return []string{
			"Input half zero-crossing span (ms): " + fv(value),
			"Frequency (Hz): " + fv(freq),
			"Zero-crossing length L (s): " + fv(length),
		}, nil
	}

	return nil, fmt.Errorf("unknown selector %d", sel)
}
