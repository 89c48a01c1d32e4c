package camera

import (
	"time"

	"BaristaSimulator/internal/log"
	"BaristaSimulator/internal/transition"
	"BaristaSimulator/internal/viewpoint"
)

// Option is a functional option for configuring a Controller.
type Option func(*Controller)

// WithDuration sets how long an animated switch takes.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.duration = d
	}
}

// WithEasing sets the transition curve. Nil keeps the default.
func WithEasing(easing transition.Easing) Option {
	return func(c *Controller) {
		if easing != nil {
			c.easing = easing
		}
	}
}

// WithHighlighter registers the collaborator told about completed switches.
func WithHighlighter(h Highlighter) Option {
	return func(c *Controller) {
		c.highlighter = h
	}
}

// WithPersistence sets where viewpoint sets are loaded from and saved to.
func WithPersistence(p Persistence) Option {
	return func(c *Controller) {
		c.persistence = p
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithLive selects animated switches (true) or instant ones (false).
func WithLive(live bool) Option {
	return func(c *Controller) {
		c.live = live
	}
}

// WithPose sets the live camera pose before the first switch.
func WithPose(p viewpoint.Pose) Option {
	return func(c *Controller) {
		c.pose = p
	}
}
