package reporter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/striprouter/stripbench/benchmark"
	"github.com/striprouter/stripbench/cpu"
)

var ErrMalformedRecord = errors.New("malformed benchmark record")

// The field order and quoting are relied upon by tools reading the log; do not change them.
var recordPattern = regexp.MustCompile(`^avg_sec=(\d+\.\d{2}) repeats=(\d+) cpu="(.*)" actual_hz="(\d+)"$`)

// Record is one line of the benchmark log.
type Record struct {
	AverageSeconds float64
	RepeatCount    int
	Brand          string
	ActualHz       int64
}

func NewRecord(outcome benchmark.Outcome, identity cpu.Identity) Record {
	return Record{
		AverageSeconds: outcome.AverageSeconds(),
		RepeatCount:    outcome.RepeatCount,
		Brand:          identity.Brand,
		ActualHz:       identity.ActualHz,
	}
}

// String renders the record; the average is rounded to two decimals.
func (r Record) String() string {
	return fmt.Sprintf(`avg_sec=%.2f repeats=%d cpu="%s" actual_hz="%d"`, r.AverageSeconds, r.RepeatCount, r.Brand, r.ActualHz)
}

// Format renders the log line for a finished benchmark.
func Format(outcome benchmark.Outcome, identity cpu.Identity) string {
	return NewRecord(outcome, identity).String()
}

// ParseRecord reads back a line produced by Format.
func ParseRecord(line string) (Record, error) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	avg, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: avg_sec: %v", ErrMalformedRecord, err)
	}

	repeats, err := strconv.Atoi(m[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: repeats: %v", ErrMalformedRecord, err)
	}

	hz, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: actual_hz: %v", ErrMalformedRecord, err)
	}

	return Record{
		AverageSeconds: avg,
		RepeatCount:    repeats,
		Brand:          m[3],
		ActualHz:       hz,
	}, nil
}
