//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the control panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	status   Status
	title    string

	controls []core.ParameterControl
	slots    []controlSlot
	setter   core.IntParameterSetter
	offsetX  int
}

// NewHUD constructs a HUD for sim with the given panel width. A zero width
// disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: "Controls"}
	if sim != nil && sim.Name() != "" {
		h.title = fmt.Sprintf("%s%s controls", strings.ToUpper(sim.Name()[:1]), sim.Name()[1:])
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
		h.slots = layoutControls(h.width, len(h.controls))
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles button clicks. It reports
// whether a click landed on the panel so the caller does not paint under it.
func (h *HUD) Update(offsetX int, status Status) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = offsetX
	h.status = status
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.click(mx-offsetX, my)
	}
	return true
}

func (h *HUD) click(x, y int) {
	if h.setter == nil {
		return
	}
	for i, slot := range h.slots {
		dir := 0
		switch {
		case pointInRect(x, y, slot.minus):
			dir = -1
		case pointInRect(x, y, slot.plus):
			dir = 1
		}
		if dir == 0 {
			continue
		}
		ctrl := h.controls[i]
		cur, ok := intValue(h.snapshot, ctrl.Key)
		if !ok {
			return
		}
		if target, changed := stepInt(ctrl, cur, dir); changed {
			h.setter.SetIntParameter(ctrl.Key, target)
		}
		return
	}
}

// Draw paints the panel at the offset passed to Update.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i, ctrl := range h.controls {
		slot := h.slots[i]
		y := slot.top + labelBaseline
		text.Draw(h.panel, ctrl.Label, face, panelPadding, y, labelColor)
		value := "--"
		cur, ok := intValue(h.snapshot, ctrl.Key)
		if ok {
			value = strconv.Itoa(cur)
		}
		vw := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, slot.minus.Min.X-buttonGap-vw, y, labelColor)
		_, canDec := stepInt(ctrl, cur, -1)
		_, canInc := stepInt(ctrl, cur, 1)
		h.drawButton(slot.minus, "-", ok && canDec && h.setter != nil)
		h.drawButton(slot.plus, "+", ok && canInc && h.setter != nil)
	}

	y := controlsTop + len(h.controls)*lineHeight + textLine
	for _, line := range readouts(h.snapshot, h.controls) {
		clr := labelColor
		if strings.HasPrefix(line, " ") {
			clr = dimColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += textLine
	}

	y += textLine / 2
	swatch := sand.Palette()[h.status.Selected.Code()]
	if swatch.A == 0 {
		swatch = panelBG
	}
	vector.DrawFilledRect(h.panel, panelPadding, float32(y-11), 12, 12, swatch, false)
	vector.StrokeRect(h.panel, panelPadding, float32(y-11), 12, 12, 1, dimColor, false)
	for i, line := range h.status.Lines() {
		x := panelPadding
		if i == 0 {
			x += 18
		}
		text.Draw(h.panel, line, face, x, y, labelColor)
		y += textLine
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonOff, dimColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
