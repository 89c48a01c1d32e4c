package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const STATUS_LIFETIME = 3 * time.Second

const HELP_TEXT = "Left / Right: Cycle | 1-9: Jump | R: Reset | F5: Save | F9: Load | G: Grid | L: Live"

// Status shows a transient message and the current view along the top edge.
type Status struct {
	message string
	shownAt time.Time
}

func (s *Status) Show(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.shownAt = time.Now()
}

func (s *Status) Message() string {
	if time.Since(s.shownAt) > STATUS_LIFETIME {
		return ""
	}
	return s.message
}

func (s *Status) Draw(view string, transitioning bool, live bool) {
	mode := "Live"
	if !live {
		mode = "Editing"
	}
	header := fmt.Sprintf("View: %s | Mode: %s", view, mode)
	if transitioning {
		header += " | Moving"
	}
	gui.Label(rl.NewRectangle(10, 10, 600, 20), header)
	gui.Label(rl.NewRectangle(10, 35, float32(rl.GetScreenWidth()-20), 20), HELP_TEXT)
	if msg := s.Message(); msg != "" {
		gui.Label(rl.NewRectangle(10, 60, 600, 20), msg)
	}
}
