package ui

import (
	"strings"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const CURSOR_BLINK = 500 * time.Millisecond

// TextBox is a single line input. Enter submits the trimmed text and clears
// the box.
type TextBox struct {
	Rect        rl.Rectangle
	Text        string
	Placeholder string
	MaxLength   int
	CursorPos   int
	Focused     bool
	ShowCursor  bool
	CursorBlink time.Time
}

func NewTextBox(x, y, w, h float32, maxLen int) *TextBox {
	return &TextBox{
		Rect:        rl.NewRectangle(x, y, w, h),
		MaxLength:   maxLen,
		CursorBlink: time.Now(),
		ShowCursor:  true,
	}
}

// Update handles input for this frame. It returns the submitted text and
// true when Enter was pressed on a non-empty box.
func (tb *TextBox) Update() (string, bool) {
	mousePos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		tb.Focused = rl.CheckCollisionPointRec(mousePos, tb.Rect)
		if tb.Focused {
			relativeX := mousePos.X - (tb.Rect.X + 5)

			tb.CursorPos = 0
			for i := 1; i <= len(tb.Text); i++ {
				width := float32(rl.MeasureText(tb.Text[:i], TEXT_SIZE))
				if width >= relativeX {
					tb.CursorPos = i - 1
					break
				}
				tb.CursorPos = i
			}
		}
	}

	if !tb.Focused {
		tb.ShowCursor = false
		return "", false
	}

	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		if len(tb.Text) < tb.MaxLength && key < 128 {
			tb.Text = tb.Text[:tb.CursorPos] + string(rune(key)) + tb.Text[tb.CursorPos:]
			tb.CursorPos++
		}
	}

	if rl.IsKeyPressed(rl.KeyBackspace) && tb.CursorPos > 0 {
		tb.Text = tb.Text[:tb.CursorPos-1] + tb.Text[tb.CursorPos:]
		tb.CursorPos--
	}
	if rl.IsKeyPressed(rl.KeyDelete) && tb.CursorPos < len(tb.Text) {
		tb.Text = tb.Text[:tb.CursorPos] + tb.Text[tb.CursorPos+1:]
	}
	if rl.IsKeyPressed(rl.KeyLeft) && tb.CursorPos > 0 {
		tb.CursorPos--
	}
	if rl.IsKeyPressed(rl.KeyRight) && tb.CursorPos < len(tb.Text) {
		tb.CursorPos++
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		tb.Focused = false
	}

	if time.Since(tb.CursorBlink) > CURSOR_BLINK {
		tb.ShowCursor = !tb.ShowCursor
		tb.CursorBlink = time.Now()
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		text := strings.TrimSpace(tb.Text)
		if text != "" {
			tb.Text = ""
			tb.CursorPos = 0
			return text, true
		}
	}
	return "", false
}

func (tb *TextBox) Draw() {
	rl.DrawRectangleRec(tb.Rect, rl.White)
	border := rl.Gray
	if tb.Focused {
		border = HighlightedButtonColor
	}
	rl.DrawRectangleLinesEx(tb.Rect, 2, border)

	textX := tb.Rect.X + 5
	textY := tb.Rect.Y + (tb.Rect.Height / 2) - 10

	label := tb.Text
	if label == "" && !tb.Focused {
		label = tb.Placeholder
	}
	gui.Label(rl.NewRectangle(textX, textY, tb.Rect.Width-10, 20), label)

	if tb.Focused && tb.ShowCursor {
		cursorX := textX + float32(rl.MeasureText(tb.Text[:tb.CursorPos], TEXT_SIZE))
		rl.DrawLine(int32(cursorX), int32(textY), int32(cursorX), int32(textY+20), rl.Black)
	}
}
