// Package ui draws the raygui overlay: one button per viewpoint, the capture
// box and the status line.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"BaristaSimulator/internal/log"
)

const (
	BUTTON_WIDTH   = 150
	BUTTON_HEIGHT  = 30
	BUTTON_SPACING = 10
	BAR_MARGIN     = 10
	TEXT_SIZE      = 20
)

// HighlightedButtonColor outlines the active view. Buttons keep the raygui
// default fill, which is already the light grey of the normal state.
var HighlightedButtonColor = rl.NewColor(51, 153, 255, 255)

// ButtonBar lists the viewpoints along the bottom edge and outlines the
// active one. It receives highlight changes from the camera controller.
type ButtonBar struct {
	logger *log.Logger
	active string
}

func NewButtonBar(logger *log.Logger) *ButtonBar {
	return &ButtonBar{logger: logger}
}

func (b *ButtonBar) OnViewpointChanged(name string) {
	b.logger.Debugw("highlight", "view", name)
	b.active = name
}

func (b *ButtonBar) Active() string {
	return b.active
}

func buttonRect(i int) rl.Rectangle {
	x := float32(BAR_MARGIN + i*(BUTTON_WIDTH+BUTTON_SPACING))
	y := float32(rl.GetScreenHeight() - BUTTON_HEIGHT - BAR_MARGIN)
	return rl.NewRectangle(x, y, BUTTON_WIDTH, BUTTON_HEIGHT)
}

// Draw renders a button per name and returns the index of the one clicked
// this frame, or -1.
func (b *ButtonBar) Draw(names []string) int {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, TEXT_SIZE)

	clicked := -1
	for i, name := range names {
		rect := buttonRect(i)
		if gui.Button(rect, name) {
			b.logger.Infow("view button clicked", "view", name)
			clicked = i
		}
		if name == b.active {
			rl.DrawRectangleLinesEx(rect, 3, HighlightedButtonColor)
		}
	}
	return clicked
}
