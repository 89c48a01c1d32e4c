// Package camera sequences switches between the viewpoints of a store and
// drives the live camera pose toward the selected one.
//
// The controller is driven from the host frame loop and is not safe for
// concurrent use. At most one transition runs at a time; switch requests
// made while it runs are dropped, not queued. Invalid names and indices are
// ignored without error.
package camera

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"BaristaSimulator/internal/log"
	"BaristaSimulator/internal/transition"
	"BaristaSimulator/internal/viewpoint"
)

// Highlighter is told the name of the active viewpoint once per completed
// switch.
type Highlighter interface {
	OnViewpointChanged(name string)
}

// Persistence stores viewpoint sets between sessions.
type Persistence interface {
	HasData() bool
	Load() ([]viewpoint.Viewpoint, error)
	Save(views []viewpoint.Viewpoint) error
}

type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Transitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}

const noViewpoint = -1

type Controller struct {
	store       *viewpoint.Store
	persistence Persistence
	highlighter Highlighter
	logger      *log.Logger

	duration time.Duration
	easing   transition.Easing
	live     bool

	current int
	pending string
	state   State
	engine  *transition.Engine
	pose    viewpoint.Pose
}

// NewController creates a controller over store. Switches animate over
// transition.DEFAULT_DURATION with EaseInOut unless options say otherwise.
func NewController(store *viewpoint.Store, options ...Option) *Controller {
	c := &Controller{
		store:    store,
		logger:   log.Nop(),
		duration: transition.DEFAULT_DURATION,
		easing:   transition.EaseInOut,
		live:     true,
		current:  noViewpoint,
		state:    Idle,
		pose: viewpoint.Pose{
			Rotation:    mgl32.QuatIdent(),
			FieldOfView: viewpoint.DEFAULT_FIELD_OF_VIEW,
		},
	}

	for _, option := range options {
		option(c)
	}
	return c
}

// Start fills the store from persisted data when there is any, otherwise
// from the built-in defaults.
func (c *Controller) Start() error {
	if c.persistence != nil && c.persistence.HasData() {
		if err := c.LoadPersistedSet(); err != nil {
			c.store.SeedDefaults()
			return err
		}
	}
	c.store.SeedDefaults()
	c.logger.Infow("viewpoints ready", "count", c.store.Len(), "names", c.store.Names())
	return nil
}

// SwitchTo moves to the first viewpoint called name.
func (c *Controller) SwitchTo(name string) {
	_, i, ok := c.store.Lookup(name)
	if !ok {
		c.logger.Debugw("switch rejected, no such viewpoint", "name", name)
		return
	}
	c.SwitchToIndex(i)
}

// SwitchToIndex moves to the viewpoint at index i. It does nothing while a
// transition is running or when i is out of range.
func (c *Controller) SwitchToIndex(i int) {
	if c.state == Transitioning {
		c.logger.Debugw("switch rejected, transition running", "index", i)
		return
	}
	target, ok := c.store.At(i)
	if !ok {
		c.logger.Debugw("switch rejected, no such viewpoint", "index", i, "count", c.store.Len())
		return
	}

	c.current = i
	if !c.live {
		c.pose = target.Pose()
		c.logger.Debugw("viewpoint applied", "name", target.Name)
		c.notify(target.Name)
		return
	}

	c.engine = transition.New(c.pose, target.Pose(), c.duration, c.easing)
	c.pending = target.Name
	c.state = Transitioning
	c.logger.Debugw("transition started", "name", target.Name, "duration", c.duration)
}

// Next moves to the following viewpoint, wrapping to the first.
func (c *Controller) Next() {
	n := c.store.Len()
	if n == 0 {
		return
	}
	if c.current == noViewpoint {
		c.SwitchToIndex(0)
		return
	}
	c.SwitchToIndex((c.current + 1) % n)
}

// Previous moves to the preceding viewpoint, wrapping to the last.
func (c *Controller) Previous() {
	n := c.store.Len()
	if n == 0 {
		return
	}
	if c.current == noViewpoint {
		c.SwitchToIndex(n - 1)
		return
	}
	c.SwitchToIndex((c.current - 1 + n) % n)
}

// Tick advances a running transition by dt, the host loop's frame time.
func (c *Controller) Tick(dt time.Duration) {
	if c.state != Transitioning || c.engine == nil {
		return
	}
	pose, done := c.engine.Tick(dt)
	c.pose = pose
	if !done {
		return
	}

	c.state = Idle
	c.engine = nil
	c.logger.Debugw("transition finished", "name", c.pending)
	c.notify(c.pending)
}

// SaveCurrentSet writes the store to the persistence collaborator.
func (c *Controller) SaveCurrentSet() error {
	if c.persistence == nil {
		return nil
	}
	views := c.store.Snapshot()
	if err := c.persistence.Save(views); err != nil {
		return fmt.Errorf("camera: save viewpoints: %w", err)
	}
	c.logger.Infow("viewpoints saved", "count", len(views))
	for _, v := range views {
		c.logger.Debugw("saved viewpoint", "viewpoint", v.String())
	}
	return nil
}

// LoadPersistedSet replaces the store with the persisted set. An empty set
// leaves the store as it is. The selection follows its name into the new
// set; a running transition is dropped where it stands.
func (c *Controller) LoadPersistedSet() error {
	if c.persistence == nil || !c.persistence.HasData() {
		return nil
	}
	views, err := c.persistence.Load()
	if err != nil {
		return fmt.Errorf("camera: load viewpoints: %w", err)
	}
	selected := c.CurrentName()
	if !c.store.LoadFrom(views) {
		return nil
	}

	c.current = noViewpoint
	if c.state == Transitioning {
		c.engine = nil
		c.state = Idle
		c.logger.Debugw("transition dropped by reload", "name", c.pending)
	} else if _, i, ok := c.store.Lookup(selected); ok && selected != "" {
		c.current = i
	}
	c.logger.Infow("viewpoints loaded", "count", c.store.Len())
	return nil
}

// ResetToDefaults replaces the store with the built-in set. A running
// transition is dropped where it stands.
func (c *Controller) ResetToDefaults() {
	c.store.ResetToDefaults()
	c.engine = nil
	c.state = Idle
	c.current = noViewpoint
	c.logger.Infow("viewpoints reset to defaults", "count", c.store.Len())
}

// Capture appends the live camera pose as a new viewpoint called name. It
// reports false for an empty or taken name, or while a transition runs.
func (c *Controller) Capture(name string) bool {
	if name == "" || c.state == Transitioning {
		return false
	}
	if _, _, taken := c.store.Lookup(name); taken {
		return false
	}
	v := viewpoint.Viewpoint{
		Name:        name,
		Position:    c.pose.Position,
		Rotation:    viewpoint.EulerDegrees(c.pose.Rotation),
		FieldOfView: c.pose.FieldOfView,
	}
	c.store.Add(v)
	c.logger.Infow("viewpoint captured", "viewpoint", v.String())
	return true
}

// SetLive switches between animated and instant switching.
func (c *Controller) SetLive(live bool) {
	c.live = live
}

func (c *Controller) Live() bool {
	return c.live
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsTransitioning() bool {
	return c.state == Transitioning
}

// Pose is the live camera pose.
func (c *Controller) Pose() viewpoint.Pose {
	return c.pose
}

// CurrentIndex is the selected viewpoint, -1 before the first switch.
func (c *Controller) CurrentIndex() int {
	return c.current
}

func (c *Controller) Current() (viewpoint.Viewpoint, bool) {
	return c.store.At(c.current)
}

// CurrentName is the selected viewpoint's name, empty before the first
// switch.
func (c *Controller) CurrentName() string {
	v, ok := c.Current()
	if !ok {
		return ""
	}
	return v.Name
}

func (c *Controller) Names() []string {
	return c.store.Names()
}

func (c *Controller) notify(name string) {
	if c.highlighter != nil {
		c.highlighter.OnViewpointChanged(name)
	}
}
