package ricker_test

import (
	"fmt"

	"github.com/cwbudde/algo-ricker/wavelet/ricker"
)

func ExampleZeroCrossingLengthFromPeakFreq() {
	length, err := ricker.ZeroCrossingLengthFromPeakFreq(30)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("L = %.6f s\n", length)

	// Output:
	// L = 0.015005 s
}

func ExamplePeakFreqFromZeroCrossingLength() {
	freq, err := ricker.PeakFreqFromZeroCrossingLength(0.0150053)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("f = %.2f Hz\n", freq)

	// Output:
	// f = 30.00 Hz
}

func ExampleHalfZeroCrossingMsFromPeakFreqSlice() {
	spans, err := ricker.HalfZeroCrossingMsFromPeakFreqSlice([]float64{10, 20, 40})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.4f\n", spans)

	// Output:
	// [22.5079 11.2540 5.6270]
}

func ExamplePeakFreqFromHalfZeroCrossingMs() {
	freq, err := ricker.PeakFreqFromHalfZeroCrossingMs(11.2539)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("f = %.2f Hz\n", freq)

	// Output:
	// f = 20.00 Hz
}
