package layout

// pass is one elimination stage of the space-distribution engine. Every
// entry still in the pool that matches is removed from it, its take amount
// is subtracted from the available space and its working width is pinned.
type pass struct {
	name  string
	match func(e *entry, average int) bool
	take  func(e *entry) int
	pin   func(e *entry)

	// onlyIfRemoved skips the average recompute when nothing matched.
	onlyIfRemoved bool
}

// passes run in priority order: explicit fixed sizes win outright, then
// minimum and maximum limits, then the shrink and grow policy bits.
var passes = []pass{
	{
		name: "fixed",
		match: func(e *entry, _ int) bool {
			return e.h == FixedConstraint && e.min <= 0 && e.max <= 0
		},
		take:          func(e *entry) int { return e.size.Width },
		onlyIfRemoved: true,
	},
	{
		name: "minimum",
		match: func(e *entry, average int) bool {
			return e.min > 0 && e.min > average
		},
		take: func(e *entry) int { return e.min },
		pin:  func(e *entry) { e.size.Width = e.min },
	},
	{
		name: "maximum",
		match: func(e *entry, average int) bool {
			return e.max > 0 && e.max < average
		},
		take: func(e *entry) int { return e.max },
		pin:  func(e *entry) { e.size.Width = e.max },
	},
	{
		name: "no-shrink",
		match: func(e *entry, average int) bool {
			return e.size.Width > average && !e.h.CanShrink()
		},
		take: func(e *entry) int { return e.size.Width },
	},
	{
		// Takes the live width, not the working width.
		name: "no-grow",
		match: func(e *entry, average int) bool {
			return e.size.Width < average && !e.h.CanGrow()
		},
		take: func(e *entry) int { return e.live },
	},
}

// pool tracks the entries still subject to redistribution.
type pool struct {
	entries   []entry
	members   []int // indexes into entries
	available int
	average   int
	divisor   int // pool size the current average was computed over
}

func newPool(entries []entry, available int) *pool {
	p := &pool{
		entries:   entries,
		members:   make([]int, len(entries)),
		available: available,
	}
	for i := range entries {
		p.members[i] = i
	}
	p.recompute()
	return p
}

// recompute refreshes the average share. An empty pool keeps the prior value.
func (p *pool) recompute() {
	if len(p.members) == 0 {
		return
	}
	p.divisor = len(p.members)
	p.average = p.available / p.divisor
}

// run applies one pass and returns how many entries it removed.
func (p *pool) run(ps pass) int {
	average := p.average
	kept := p.members[:0]
	removed := 0

	for _, i := range p.members {
		e := &p.entries[i]
		if !ps.match(e, average) {
			kept = append(kept, i)
			continue
		}
		p.available -= ps.take(e)
		if ps.pin != nil {
			ps.pin(e)
		}
		e.pinned = true
		removed++
	}
	p.members = kept

	if removed > 0 || !ps.onlyIfRemoved {
		p.recompute()
	}
	return removed
}

// expandBudget harvests the slack of non-expanding pool members: the gap
// between the average and their minimum width (which becomes their width)
// or their working width.
func (p *pool) expandBudget() int {
	space := 0
	for _, i := range p.members {
		e := &p.entries[i]
		if e.h.Expands() {
			continue
		}
		if e.min > 0 && e.min < p.average {
			space += p.average - e.min
			e.size.Width = e.min
		} else if e.size.Width < p.average {
			space += p.average - e.size.Width
		}
	}
	return space
}

// expanders counts the pool members that carry ExpandPolicy.
func (p *pool) expanders() int {
	n := 0
	for _, i := range p.members {
		if p.entries[i].h.Expands() {
			n++
		}
	}
	return n
}

// allocation is the outcome of one distribution.
type allocation struct {
	rects         []Rect // parallel to the entries, relative to the layout origin
	average       int
	artifact      int
	expandAverage int
	poolSize      int
	removed       map[string]int
}

// distribute resolves the width, height and position of every entry
// within area. It never fails: degenerate input yields zero or clamped
// widths.
func distribute(entries []entry, numExpanding int, area Size, spacing int) allocation {
	out := allocation{removed: make(map[string]int, len(passes))}
	if len(entries) == 0 {
		return out
	}

	totalSpacing := (len(entries) - 1) * spacing
	p := newPool(entries, area.Width-totalSpacing)

	for _, ps := range passes {
		if n := p.run(ps); n > 0 {
			out.removed[ps.name] = n
		}
	}

	// The slack is shared by the expanders still in the pool; pinned
	// expanders keep their pinned width.
	expandSpace, sharers := 0, 0
	if numExpanding > 0 {
		expandSpace = p.expandBudget()
		sharers = p.expanders()
		if sharers > 0 {
			out.expandAverage = expandSpace / sharers
		}
	}

	// The truncation remainders go to a single entry so the widths add
	// up to the available space exactly. With no expander left to share
	// it, the whole budget goes there too.
	artifact := p.available - p.average*p.divisor
	if numExpanding > 0 {
		artifact += expandSpace - out.expandAverage*sharers
	}
	consumer := artifactConsumer(entries, numExpanding, p.average)

	out.average = p.average
	out.artifact = artifact
	out.poolSize = len(p.members)
	out.rects = make([]Rect, len(entries))

	currentX := 0
	for i := range entries {
		e := &entries[i]
		width := resolveWidth(e, numExpanding, p.average, out.expandAverage)
		if i == consumer {
			width += artifact
		}
		width = max(0, width)

		height := e.size.Height
		out.rects[i] = Rect{
			X:      currentX,
			Y:      (area.Height - height) / 2,
			Width:  width,
			Height: height,
		}
		currentX += width + spacing
	}
	return out
}

// resolveWidth returns an entry's final width before the artifact.
func resolveWidth(e *entry, numExpanding, average, expandAverage int) int {
	if e.pinned {
		return e.size.Width
	}
	w := e.size.Width
	if numExpanding > 0 {
		switch {
		case e.h.Expands():
			return average + expandAverage
		case e.h.CanShrink() && w > average:
			return average
		default:
			return w
		}
	}
	switch {
	case e.min > 0 || e.max > 0:
		return average
	case e.h.CanShrink() && w > average:
		return average
	case e.h.CanGrow() && w < average:
		return average
	default:
		return w
	}
}

// artifactConsumer picks the entry that absorbs the rounding remainder:
// the first expanding entry when any widget expands, otherwise the first
// entry grown to the average. When neither exists the first entry still in
// the pool without a maximum width takes it, and failing that the first
// entry still in the pool. Returns -1 when every entry was pinned.
func artifactConsumer(entries []entry, numExpanding, average int) int {
	first, fallback := -1, -1
	for i := range entries {
		e := &entries[i]
		if e.pinned {
			continue
		}
		if first < 0 {
			first = i
		}
		if fallback < 0 && e.max <= 0 {
			fallback = i
		}
		if numExpanding > 0 {
			if e.h.Expands() {
				return i
			}
			continue
		}
		if e.min <= 0 && e.max <= 0 && e.h.CanGrow() && e.size.Width < average {
			return i
		}
	}
	if fallback < 0 {
		return first
	}
	return fallback
}
