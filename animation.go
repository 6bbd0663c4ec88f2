package tk

import (
	"time"

	"github.com/grindlemire/go-tk/pkg/easing"
)

// Tween moves a value from one number to another over a duration along an
// easing curve. The zero Tween is finished and reports 0.
type Tween struct {
	from, to float64
	duration time.Duration
	ease     easing.Func
	start    time.Time
}

// NewTween creates a tween that starts at now. A nil ease is linear.
func NewTween(from, to float64, duration time.Duration, ease easing.Func, now time.Time) *Tween {
	if ease == nil {
		ease = easing.Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease, start: now}
}

// Value returns the eased value at now, holding the end points outside the
// tween's time span.
func (tw *Tween) Value(now time.Time) float64 {
	if tw == nil || tw.ease == nil {
		return 0
	}
	elapsed := now.Sub(tw.start).Seconds()
	return easing.Clamp(tw.ease, elapsed, tw.from, tw.to-tw.from, tw.duration.Seconds())
}

// Done reports whether the tween has reached its end at now.
func (tw *Tween) Done(now time.Time) bool {
	return tw == nil || !now.Before(tw.start.Add(tw.duration))
}

// Target returns the value the tween ends at.
func (tw *Tween) Target() float64 {
	if tw == nil {
		return 0
	}
	return tw.to
}
