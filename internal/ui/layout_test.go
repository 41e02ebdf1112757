package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
)

func widthControl() core.ParameterControl {
	return core.ParameterControl{
		Key: "w", Label: "Width", Type: core.ParamTypeInt,
		Step: 8, Min: 1, Max: 1024, HasMin: true, HasMax: true,
	}
}

func TestStepIntClampsToBounds(t *testing.T) {
	ctrl := widthControl()

	v, ok := stepInt(ctrl, 64, 1)
	assert.True(t, ok)
	assert.Equal(t, 72, v)

	v, ok = stepInt(ctrl, 4, -1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = stepInt(ctrl, 1, -1)
	assert.False(t, ok)
	_, ok = stepInt(ctrl, 1024, 1)
	assert.False(t, ok)
}

func TestStepIntRejectsNonInt(t *testing.T) {
	ctrl := widthControl()
	ctrl.Type = core.ParamTypeFloat
	_, ok := stepInt(ctrl, 3, 1)
	assert.False(t, ok)
}

func TestLayoutControlsStaysInsidePanel(t *testing.T) {
	slots := layoutControls(220, 2)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.LessOrEqual(t, s.plus.Max.X, 220-panelPadding)
		assert.Less(t, s.minus.Max.X, s.plus.Min.X)
		assert.True(t, pointInRect(s.plus.Min.X, s.plus.Min.Y, s.plus))
		assert.False(t, pointInRect(s.plus.Max.X, s.plus.Min.Y, s.plus))
	}
	assert.Equal(t, lineHeight, slots[1].top-slots[0].top)
	assert.Nil(t, layoutControls(0, 2))
}

func TestReadoutsSkipControls(t *testing.T) {
	s := sand.New(4, 4)
	s.SetCell(3, 0, sand.Water)
	snap := s.Parameters()

	lines := readouts(snap, s.ParameterControls())
	assert.Contains(t, lines, "Census")
	assert.Contains(t, lines, "  Water: 1")
	for _, l := range lines {
		assert.NotContains(t, l, "Width")
	}

	w, ok := intValue(snap, "w")
	assert.True(t, ok)
	assert.Equal(t, 4, w)
	_, ok = intValue(snap, "missing")
	assert.False(t, ok)
}

func TestStatusLines(t *testing.T) {
	lines := Status{Selected: sand.Water, Radius: 3, TPS: 30}.Lines()
	assert.Equal(t, []string{"brush: water  r=3", "running @ 30 tps"}, lines)

	lines = Status{Selected: sand.Rock, Paused: true}.Lines()
	assert.Contains(t, lines[1], "paused")
}
