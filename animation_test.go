package tk

import (
	"math"
	"testing"
	"time"

	"github.com/grindlemire/go-tk/pkg/easing"
)

func TestTween_Value(t *testing.T) {
	start := time.Unix(50, 0)
	tw := NewTween(10, 20, 2*time.Second, nil, start)

	type tc struct {
		at   time.Duration
		want float64
		done bool
	}

	tests := map[string]tc{
		"before start": {at: -time.Second, want: 10},
		"start":        {at: 0, want: 10},
		"quarter":      {at: 500 * time.Millisecond, want: 12.5},
		"end":          {at: 2 * time.Second, want: 20, done: true},
		"after end":    {at: 5 * time.Second, want: 20, done: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			now := start.Add(tt.at)
			if got := tw.Value(now); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
			if got := tw.Done(now); got != tt.done {
				t.Errorf("Done() = %v, want %v", got, tt.done)
			}
		})
	}
}

func TestTween_Easing(t *testing.T) {
	start := time.Unix(0, 0)
	tw := NewTween(0, 1, time.Second, easing.InQuad, start)

	if got := tw.Value(start.Add(500 * time.Millisecond)); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Value() = %v, want 0.25", got)
	}
	if tw.Target() != 1 {
		t.Errorf("Target() = %v, want 1", tw.Target())
	}
}

func TestTween_Nil(t *testing.T) {
	var tw *Tween
	if tw.Value(time.Now()) != 0 || !tw.Done(time.Now()) || tw.Target() != 0 {
		t.Error("nil Tween should report 0 and be done")
	}
}
