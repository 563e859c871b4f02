// Command rickerinfo converts between Ricker wavelet parameterizations.
//
// Usage:
//
//	rickerinfo -freq 30
//	rickerinfo -length 0.0150053
//	rickerinfo -half-ms 11.2539
//
// Exactly one of -freq, -length, -half-ms must be given. For whichever
// value is supplied, the other two parameterizations are printed.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
)

func main() {
	freq := flag.Float64("freq", math.NaN(), "peak (dominant) frequency in Hz")
	length := flag.Float64("length", math.NaN(), "full zero-crossing span L in seconds")
	halfMs := flag.Float64("half-ms", math.NaN(), "half zero-crossing span in milliseconds")
	precision := flag.Int("precision", 6, "decimal places for output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rickerinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Converts between Ricker wavelet parameterizations.\n")
		fmt.Fprintf(os.Stderr, "Exactly one of -freq, -length, -half-ms must be given.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rickerinfo -freq 30\n")
		fmt.Fprintf(os.Stderr, "  rickerinfo -length 0.0150053\n")
		fmt.Fprintf(os.Stderr, "  rickerinfo -half-ms 11.2539 -precision 4\n")
	}
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	sel, value, err := pickSelector(*freq, *length, *halfMs,
		set["freq"], set["length"], set["half-ms"])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	lines, err := report(sel, value, *precision)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
