package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	textLine       = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 10
)

// Status is the interaction state the HUD reports next to the sim values.
type Status struct {
	Selected sand.CellType
	Radius   int
	Paused   bool
	TPS      int
}

// Lines renders the status as HUD text.
func (s Status) Lines() []string {
	run := fmt.Sprintf("running @ %d tps", s.TPS)
	if s.Paused {
		run = "paused (space resumes, n steps)"
	}
	return []string{
		fmt.Sprintf("brush: %s  r=%d", s.Selected, s.Radius),
		run,
	}
}

type controlSlot struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutControls places n rows of -/+ buttons flush right in a panel of the
// given width.
func layoutControls(width, n int) []controlSlot {
	if n <= 0 || width <= 0 {
		return nil
	}
	slots := make([]controlSlot, n)
	for i := range slots {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
		slots[i] = controlSlot{top: top, minus: minus, plus: plus}
	}
	return slots
}

// stepInt applies one button press to current. It reports false when the
// control is already at the bound in that direction.
func stepInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 || ctrl.Type != core.ParamTypeInt {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// intValue reads the current value of an int control from a snapshot.
func intValue(snap core.ParameterSnapshot, key string) (int, bool) {
	p, ok := snap.Find(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// readouts lists the non-control groups as "label: value" lines.
func readouts(snap core.ParameterSnapshot, controls []core.ParameterControl) []string {
	skip := make(map[string]bool, len(controls))
	for _, c := range controls {
		skip[c.Key] = true
	}
	var lines []string
	for _, group := range snap.Groups {
		var body []string
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			body = append(body, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		if len(body) == 0 {
			continue
		}
		lines = append(lines, group.Name)
		lines = append(lines, body...)
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
