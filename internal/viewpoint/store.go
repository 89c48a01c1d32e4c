package viewpoint

import "github.com/go-gl/mathgl/mgl32"

const (
	OVERVIEW       = "Overview"
	MACHINE_VIEW   = "Machine View"
	GRINDER_VIEW   = "Grinder View"
	WORKSPACE_VIEW = "Workspace View"
)

// Defaults returns the built-in viewpoint set in display order. The bar
// front faces +Z, so every view stands in front of it looking down -Z.
func Defaults() []Viewpoint {
	return []Viewpoint{
		{
			Name:        OVERVIEW,
			Position:    mgl32.Vec3{0, 1.8, 1.5},
			Rotation:    mgl32.Vec3{-20, 0, 0},
			FieldOfView: 60,
		},
		{
			Name:        MACHINE_VIEW,
			Position:    mgl32.Vec3{-0.2, 1.6, 0.8},
			Rotation:    mgl32.Vec3{-10, 0, 0},
			FieldOfView: 50,
		},
		{
			Name:        GRINDER_VIEW,
			Position:    mgl32.Vec3{-0.8, 1.6, 0.8},
			Rotation:    mgl32.Vec3{-10, 0, 0},
			FieldOfView: 50,
		},
		{
			Name:        WORKSPACE_VIEW,
			Position:    mgl32.Vec3{0.3, 1.6, 0.8},
			Rotation:    mgl32.Vec3{-15, 10, 0},
			FieldOfView: 55,
		},
	}
}

// Store is the ordered viewpoint collection. Insertion order is the order
// views are displayed and cycled in. It is not safe for concurrent use.
type Store struct {
	views []Viewpoint
}

func NewStore() *Store {
	return &Store{views: make([]Viewpoint, 0)}
}

func (s *Store) Len() int {
	return len(s.views)
}

// At returns the viewpoint at index i.
func (s *Store) At(i int) (Viewpoint, bool) {
	if i < 0 || i >= len(s.views) {
		return Viewpoint{}, false
	}
	return s.views[i], true
}

// Lookup returns the first viewpoint called name and its index.
func (s *Store) Lookup(name string) (Viewpoint, int, bool) {
	for i, v := range s.views {
		if v.Name == name {
			return v, i, true
		}
	}
	return Viewpoint{}, -1, false
}

func (s *Store) Names() []string {
	names := make([]string, 0, len(s.views))
	for _, v := range s.views {
		names = append(names, v.Name)
	}
	return names
}

func (s *Store) Add(v Viewpoint) {
	s.views = append(s.views, v)
}

func (s *Store) Clear() {
	s.views = make([]Viewpoint, 0)
}

// SeedDefaults fills an empty store with the built-in set. A non-empty store
// is left untouched.
func (s *Store) SeedDefaults() {
	if len(s.views) > 0 {
		return
	}
	s.views = append(s.views, Defaults()...)
}

func (s *Store) ResetToDefaults() {
	s.Clear()
	s.SeedDefaults()
}

// LoadFrom replaces the contents with a copy of views. An empty input leaves
// the store unchanged and reports false.
func (s *Store) LoadFrom(views []Viewpoint) bool {
	if len(views) == 0 {
		return false
	}
	s.views = append(make([]Viewpoint, 0, len(views)), views...)
	return true
}

// Snapshot returns a copy of the contents.
func (s *Store) Snapshot() []Viewpoint {
	return append(make([]Viewpoint, 0, len(s.views)), s.views...)
}

// Put replaces the first viewpoint called v.Name, or appends v when there is
// none. It reports whether an existing entry was replaced.
func (s *Store) Put(v Viewpoint) bool {
	if _, i, ok := s.Lookup(v.Name); ok {
		s.views[i] = v
		return true
	}
	s.Add(v)
	return false
}

// Remove deletes the first viewpoint called name.
func (s *Store) Remove(name string) bool {
	_, i, ok := s.Lookup(name)
	if !ok {
		return false
	}
	s.views = append(s.views[:i], s.views[i+1:]...)
	return true
}
