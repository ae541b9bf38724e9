// Package benchmark times repeated invocations of an external program.
package benchmark

import "time"

// Outcome is the result of a complete benchmark.
type Outcome struct {
	// Total is the wall-clock time spent on all repetitions, including launch overhead.
	Total time.Duration

	// RepeatCount is the number of repetitions Total covers.
	RepeatCount int

	// Runs holds the wall-clock time of each repetition in order.
	Runs []time.Duration
}

// AverageSeconds is the mean time of one repetition.
func (o Outcome) AverageSeconds() float64 {
	if o.RepeatCount <= 0 {
		return 0
	}

	return o.Total.Seconds() / float64(o.RepeatCount)
}
