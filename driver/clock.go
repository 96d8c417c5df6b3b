package driver

import "time"

// Clock supplies the current time to a Driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// playhead tracks elapsed play time, excluding paused intervals.
type playhead struct {
	accumulated time.Duration
	since       time.Time
	running     bool
	last        time.Duration
}

// start restarts play time from zero.
func (p *playhead) start(now time.Time) {
	*p = playhead{since: now, running: true}
}

// resume continues play time without resetting it.
func (p *playhead) resume(now time.Time) {
	if p.running {
		return
	}
	p.since = now
	p.running = true
}

// pause freezes play time at its current value.
func (p *playhead) pause(now time.Time) {
	if !p.running {
		return
	}
	p.accumulated += nonNegative(now.Sub(p.since))
	p.running = false
}

func (p *playhead) reset() {
	*p = playhead{}
}

// elapsed returns play time at now. The result never decreases, even if the
// clock steps backwards.
func (p *playhead) elapsed(now time.Time) time.Duration {
	e := p.accumulated
	if p.running {
		e += nonNegative(now.Sub(p.since))
	}
	if e < p.last {
		e = p.last
	}
	p.last = e
	return e
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
