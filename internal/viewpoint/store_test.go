package viewpoint

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()
	assert.Equal(t, []string{OVERVIEW, MACHINE_VIEW, GRINDER_VIEW, WORKSPACE_VIEW}, s.Names())

	s.SeedDefaults()
	assert.Equal(t, 4, s.Len(), "seeding a non-empty store is a no-op")
}

func TestDefaultPoses(t *testing.T) {
	defaults := Defaults()
	require.Len(t, defaults, 4)

	overview := defaults[0]
	assert.Equal(t, mgl32.Vec3{0, 1.8, 1.5}, overview.Position)
	assert.Equal(t, mgl32.Vec3{-20, 0, 0}, overview.Rotation)
	assert.Equal(t, float32(60), overview.FieldOfView)

	assert.Equal(t, float32(50), defaults[1].FieldOfView)
	assert.Equal(t, float32(50), defaults[2].FieldOfView)
	assert.Equal(t, mgl32.Vec3{-15, 10, 0}, defaults[3].Rotation)
	assert.Equal(t, float32(55), defaults[3].FieldOfView)

	for _, v := range defaults {
		dir := v.Pose().Direction()
		assert.Negative(t, dir.Z(), "%s faces the bar", v.Name)
		assert.Negative(t, dir.Y(), "%s looks down at the counter", v.Name)
	}
	assert.Negative(t, defaults[3].Pose().Direction().X(), "workspace view turns towards the machine")
}

func TestResetToDefaultsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add(Viewpoint{Name: "Custom", FieldOfView: 40})

	s.ResetToDefaults()
	once := s.Snapshot()
	s.ResetToDefaults()
	assert.Equal(t, once, s.Snapshot())
	assert.Equal(t, Defaults(), once)
}

func TestLookupFirstMatch(t *testing.T) {
	s := NewStore()
	s.Add(Viewpoint{Name: "A", FieldOfView: 50})
	s.Add(Viewpoint{Name: "B", FieldOfView: 60})
	s.Add(Viewpoint{Name: "A", FieldOfView: 70})

	v, i, ok := s.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, float32(50), v.FieldOfView)

	_, i, ok = s.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestAtBounds(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()

	_, ok := s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(s.Len())
	assert.False(t, ok)

	v, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, MACHINE_VIEW, v.Name)
}

func TestLoadFrom(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()

	assert.False(t, s.LoadFrom(nil))
	assert.Equal(t, 4, s.Len(), "empty input leaves the store alone")

	src := []Viewpoint{{Name: "Only", Position: mgl32.Vec3{1, 2, 3}, FieldOfView: 45}}
	assert.True(t, s.LoadFrom(src))
	assert.Equal(t, []string{"Only"}, s.Names())

	src[0].Name = "Changed"
	assert.Equal(t, []string{"Only"}, s.Names(), "store keeps its own copy")
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()

	snap := s.Snapshot()
	snap[0].FieldOfView = 10
	v, _ := s.At(0)
	assert.Equal(t, float32(60), v.FieldOfView)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()
	s.Add(Viewpoint{Name: "Extra", Position: mgl32.Vec3{0.1, 1.2, 0.3}, Rotation: mgl32.Vec3{-10, 5, 0}, FieldOfView: 55})

	fresh := NewStore()
	require.True(t, fresh.LoadFrom(s.Snapshot()))
	assert.Equal(t, s.Snapshot(), fresh.Snapshot())
}

func TestPutReplacesOrAppends(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()

	replaced := s.Put(Viewpoint{Name: GRINDER_VIEW, Position: mgl32.Vec3{1, 1, 1}, FieldOfView: 40})
	assert.True(t, replaced)
	assert.Equal(t, 4, s.Len())
	v, i, _ := s.Lookup(GRINDER_VIEW)
	assert.Equal(t, 2, i, "replacement keeps its slot")
	assert.Equal(t, float32(40), v.FieldOfView)

	assert.False(t, s.Put(Viewpoint{Name: "Milk Station", FieldOfView: 50}))
	assert.Equal(t, []string{OVERVIEW, MACHINE_VIEW, GRINDER_VIEW, WORKSPACE_VIEW, "Milk Station"}, s.Names())
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()

	assert.True(t, s.Remove(MACHINE_VIEW))
	assert.Equal(t, []string{OVERVIEW, GRINDER_VIEW, WORKSPACE_VIEW}, s.Names())
	assert.False(t, s.Remove(MACHINE_VIEW))
	assert.Equal(t, 3, s.Len())
}
