package component

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts seconds. A once timer stays finished after it elapses; a
// repeating timer is finished only on the ticks where it wraps.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode
	finished bool
	wraps    int
}

func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if t.Mode == TimerOnce {
		if t.finished {
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
		}
		return
	}

	t.Elapsed += dt
	t.finished = false
	t.wraps = 0
	if t.Duration <= 0 {
		t.finished = true
		t.wraps = 1
		t.Elapsed = 0
		return
	}
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.finished = true
		t.wraps++
	}
}

// TimesFinished returns how often a repeating timer wrapped during the last
// Tick. Once timers report 1 while finished.
func (t *Timer) TimesFinished() int {
	if t.Mode == TimerOnce {
		if t.finished {
			return 1
		}
		return 0
	}
	return t.wraps
}

func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.wraps = 0
}

// Fraction returns elapsed/duration clamped to [0,1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	return f
}
