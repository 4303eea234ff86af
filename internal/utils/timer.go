// internal/utils/timer.go
package utils

// TimerMode определяет, что происходит с таймером после срабатывания.
type TimerMode int

const (
	// Once stops at Duration and stays finished until Reset.
	Once TimerMode = iota
	// Repeating wraps around and fires every Duration seconds.
	Repeating
)

// Timer is a countdown advanced by elapsed game time (seconds).
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished   bool
	timesFired int
}

// NewTimer creates a timer that fires after duration seconds.
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.timesFired = 0
	if dt < 0 {
		dt = 0
	}

	switch t.Mode {
	case Once:
		if t.finished {
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.timesFired = 1
		}
	case Repeating:
		t.Elapsed += dt
		if t.Duration <= 0 {
			// Нулевой период: срабатываем ровно один раз за тик.
			t.Elapsed = 0
			t.timesFired = 1
			t.finished = true
			return
		}
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
			t.timesFired++
		}
		t.finished = t.timesFired > 0
	}
}

// Finished reports whether a Once timer has run out, or whether a Repeating
// timer fired during the last Tick.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the timer fired during the last Tick.
func (t *Timer) JustFinished() bool { return t.timesFired > 0 }

// TimesFinished returns how many times the timer fired during the last Tick.
func (t *Timer) TimesFinished() int { return t.timesFired }

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFired = 0
}

// SetDuration changes the period without touching elapsed time.
func (t *Timer) SetDuration(d float64) {
	t.Duration = d
	if t.Mode == Once && t.Elapsed >= d {
		t.Elapsed = d
		t.finished = true
	}
}
