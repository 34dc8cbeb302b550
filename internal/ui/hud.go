//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD needs from a session.
type Source interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel to the right of the board.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []hudControlState
	offsetX  int
}

type hudControlState struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD of the given panel width.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{src: src, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, ctrl := range src.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl})
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes the snapshot and applies clicks on the +/- buttons.
// offsetX is the panel's left edge in screen pixels.
func (h *HUD) Update(offsetX int) {
	h.offsetX = offsetX
	h.snapshot = h.src.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		p, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			state.value = v
			state.hasValue = true
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case !state.hasValue:
		case pointInRect(px, my, state.minusRect):
			h.adjust(state, -1)
			return
		case pointInRect(px, my, state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	step := state.control.Step
	switch state.control.Type {
	case core.ParamTypeInt:
		if step < 1 {
			step = 1
		}
		target := state.control.Clamp(state.value + float64(direction)*step)
		h.src.SetIntParameter(state.control.Key, int(math.Round(target)))
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
		target := state.control.Clamp(state.value + float64(direction)*step)
		h.src.SetFloatParameter(state.control.Key, target)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineSpacing
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, labelColor)
			y += lineSpacing
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		value := "--"
		if state.hasValue {
			value = formatValue(state.control, state.value)
		}
		ty := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label+": "+value, face, panelPadding, ty, labelColor)
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) isControl(key string) bool {
	for _, state := range h.controls {
		if state.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(buttonColor)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, labelColor)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

const (
	panelPadding   = 12
	lineSpacing    = 18
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = 200
)
