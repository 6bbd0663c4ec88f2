// Package easing implements Robert Penner's easing equations.
//
// Every function has the signature of Func: t is the elapsed time, b the
// start value, c the total change and d the duration. t and d share a unit
// (seconds, frames, anything). At t == 0 a function returns b, and at
// t == d it returns b + c.
package easing

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Func is an easing function.
type Func func(t, b, c, d float64) float64

func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func InQuart(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func InOutQuart(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func InQuint(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func InOutQuint(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

func InSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func OutSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

func InExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func OutExpo(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func InOutExpo(t, b, c, d float64) float64 {
	switch {
	case t == 0:
		return b
	case t == d:
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

func InCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func InOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

// overshoot is the Back family's default overshoot, about 10%.
const overshoot = 1.70158

func InBack(t, b, c, d float64) float64 {
	s := overshoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func OutBack(t, b, c, d float64) float64 {
	s := overshoot
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func InOutBack(t, b, c, d float64) float64 {
	s := overshoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

func InElastic(t, b, c, d float64) float64 {
	switch {
	case t == 0:
		return b
	case t == d:
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t = t/d - 1
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

func OutElastic(t, b, c, d float64) float64 {
	switch {
	case t == 0:
		return b
	case t == d:
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t /= d
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

func InOutElastic(t, b, c, d float64) float64 {
	switch {
	case t == 0:
		return b
	case t == d:
		return b + c
	}
	p := d * (0.3 * 1.5)
	s := p / 4
	t /= d / 2
	t--
	if t < 0 {
		return -0.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
}

func InBounce(t, b, c, d float64) float64 {
	return c - OutBounce(d-t, 0, c, d) + b
}

func OutBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

func InOutBounce(t, b, c, d float64) float64 {
	if t < d/2 {
		return InBounce(t*2, 0, c, d)*0.5 + b
	}
	return OutBounce(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

var byName = map[string]Func{
	"linear":         Linear,
	"in-quad":        InQuad,
	"out-quad":       OutQuad,
	"in-out-quad":    InOutQuad,
	"in-cubic":       InCubic,
	"out-cubic":      OutCubic,
	"in-out-cubic":   InOutCubic,
	"in-quart":       InQuart,
	"out-quart":      OutQuart,
	"in-out-quart":   InOutQuart,
	"in-quint":       InQuint,
	"out-quint":      OutQuint,
	"in-out-quint":   InOutQuint,
	"in-sine":        InSine,
	"out-sine":       OutSine,
	"in-out-sine":    InOutSine,
	"in-expo":        InExpo,
	"out-expo":       OutExpo,
	"in-out-expo":    InOutExpo,
	"in-circ":        InCirc,
	"out-circ":       OutCirc,
	"in-out-circ":    InOutCirc,
	"in-back":        InBack,
	"out-back":       OutBack,
	"in-out-back":    InOutBack,
	"in-elastic":     InElastic,
	"out-elastic":    OutElastic,
	"in-out-elastic": InOutElastic,
	"in-bounce":      InBounce,
	"out-bounce":     OutBounce,
	"in-out-bounce":  InOutBounce,
}

// Lookup returns the function with the given kebab-case name, such as
// "linear" or "in-out-cubic". Case and the separators "-", "_" and " "
// are not significant.
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if f, ok := byName[key]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown easing function %q", name)
}

// Names returns every name Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Clamp evaluates f with t limited to [0, d]. A non-positive duration
// yields the end value.
func Clamp(f Func, t, b, c, d float64) float64 {
	if d <= 0 || t >= d {
		return b + c
	}
	if t <= 0 {
		return b
	}
	return f(t, b, c, d)
}
