package tk

import (
	"fmt"
	"math"
	"time"

	"github.com/grindlemire/go-tk/pkg/easing"
)

var _ Control = (*ProgressBar)(nil)

const (
	progressFull  = '█'
	progressEmpty = '░'
)

// ProgressBar shows a fraction between 0 and 1 as a filled bar, optionally
// followed by a percentage. Changes can be animated with AnimateTo and
// Tick.
type ProgressBar struct {
	Element
	value       float64
	showPercent bool
	tween       *Tween
}

// NewProgressBar creates a bar that prefers 20 cells, soaks up spare
// width and keeps a height of one row.
func NewProgressBar(value float64, opts ...Option) *ProgressBar {
	return &ProgressBar{
		Element: newElement(Sz(20, 1), ExpandingConstraint, FixedConstraint, opts),
		value:   clampUnit(value),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(1, max(0, v))
}

// Value returns the current fraction.
func (p *ProgressBar) Value() float64 {
	return p.value
}

// SetValue sets the fraction immediately, cancelling any animation.
func (p *ProgressBar) SetValue(v float64) {
	p.value = clampUnit(v)
	p.tween = nil
}

// ShowPercent toggles the trailing percentage label.
func (p *ProgressBar) ShowPercent(show bool) {
	p.showPercent = show
}

// AnimateTo starts moving the value towards target over duration.
func (p *ProgressBar) AnimateTo(target float64, duration time.Duration, ease easing.Func, now time.Time) {
	target = clampUnit(target)
	if duration <= 0 {
		p.SetValue(target)
		return
	}
	p.tween = NewTween(p.value, target, duration, ease, now)
}

// Animating reports whether an animation is in progress.
func (p *ProgressBar) Animating() bool {
	return p.tween != nil
}

// Tick advances the animation to now. It reports whether the value
// changed.
func (p *ProgressBar) Tick(now time.Time) bool {
	if p.tween == nil {
		return false
	}
	prev := p.value
	p.value = clampUnit(p.tween.Value(now))
	if p.tween.Done(now) {
		p.value = p.tween.Target()
		p.tween = nil
	}
	return p.value != prev
}

// Paint draws the bar on the top row of its bounds.
func (p *ProgressBar) Paint(buf *Buffer, origin Point) {
	r := p.bounds.Translate(origin.X, origin.Y)
	if r.IsEmpty() {
		return
	}

	barWidth := r.Width
	if p.showPercent {
		label := fmt.Sprintf(" %3d%%", int(math.Round(p.value*100)))
		if w := StringWidth(label); w < r.Width {
			barWidth -= w
			buf.SetStringClipped(r.X+barWidth, r.Y, label, r)
		}
	}

	filled := int(math.Round(p.value * float64(barWidth)))
	buf.Fill(NewRect(r.X, r.Y, filled, 1), progressFull)
	buf.Fill(NewRect(r.X+filled, r.Y, barWidth-filled, 1), progressEmpty)
}
