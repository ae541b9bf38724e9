package timing

import "time"

// Clock returns the current time. time.Now is used when no clock is given.
type Clock func() time.Time

// Timer tracks the duration between invocations to Start and Stop.
type Timer struct {
	now   Clock
	start time.Time
	end   time.Time
}

func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}

	return &Timer{now: clock}
}

func (s *Timer) Start() {
	s.start = s.now()
	s.end = time.Time{}
}

func (s *Timer) Stop() {
	s.end = s.now()
}

// Elapsed returns the time between Start and Stop, or zero if the timer was never stopped.
func (s *Timer) Elapsed() time.Duration {
	if s.end.IsZero() {
		return 0
	}

	return s.end.Sub(s.start)
}

// Collector records one duration per Start/Stop pair.
type Collector struct {
	durations []time.Duration
	timer     *Timer
}

func NewDurationCollector(clock Clock, capacity int) *Collector {
	return &Collector{
		durations: make([]time.Duration, 0, capacity),
		timer:     NewTimer(clock),
	}
}

func (d *Collector) Start() {
	d.timer.Start()
}

// Stop records and returns the duration since the matching Start.
func (d *Collector) Stop() time.Duration {
	d.timer.Stop()

	elapsed := d.timer.Elapsed()
	d.durations = append(d.durations, elapsed)

	return elapsed
}

func (d *Collector) Durations() []time.Duration {
	return d.durations
}
