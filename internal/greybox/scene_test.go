package greybox

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"BaristaSimulator/internal/log"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestBuildArrangesModelsUnderRoots(t *testing.T) {
	s := Build(log.Nop())

	names := func(n *Node) []string {
		var out []string
		for _, c := range n.Children {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Coffee_Bar"}, names(s.CoffeeBar))
	assert.Equal(t, []string{"Espresso_Machine", "Coffee_Grinder"}, names(s.Equipment))
	assert.Equal(t, []string{
		"Portafilter", "Tamper", "Knock_Box",
		"Shot_Glass", "Demitasse_Cup", "Cappuccino_Cup", "Saucer", "Steam_Pitcher",
		"Serving_Tray", "Steam_Cloth_Tray",
	}, names(s.Tools))
}

func TestLookupFirstNameWins(t *testing.T) {
	s := Build(log.Nop())

	handle, ok := s.Lookup("Handle")
	require.True(t, ok)
	assert.Equal(t, "Portafilter", handle.Parent.Name)

	sink, ok := s.Lookup("Sink")
	require.True(t, ok)
	assert.Equal(t, "Coffee_Bar", sink.Parent.Name)

	_, ok = s.Lookup("Milk_Fridge")
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	s := Build(log.Nop())
	// 3 roots, bar+sink, machine+3, grinder+2, portafilter+3, tamper+2,
	// knock box, 4 cups, pitcher+3, 2 trays
	assert.Equal(t, 3+2+4+3+4+3+1+4+4+2, s.Count())

	primitives := 0
	s.Primitives(func(n *Node, _ Transform) {
		assert.NotEqual(t, Group, n.Shape)
		assert.Equal(t, GREYBOX_TAG, n.Tag)
		primitives++
	})
	assert.Equal(t, s.Count()-3-3, primitives, "roots and three assemblies are groups")
}

func TestWorldPositions(t *testing.T) {
	s := Build(log.Nop())

	bar, _ := s.Lookup("Coffee_Bar")
	assertVec(t, mgl32.Vec3{0, 0.45, 0}, bar.World().Position)

	machine, _ := s.Lookup("Espresso_Machine")
	assertVec(t, mgl32.Vec3{-0.2, 1.15, 0}, machine.World().Position)

	head, _ := s.Lookup("GroupHead_2")
	assertVec(t, mgl32.Vec3{-0.05, 0.95, 0.2}, head.World().Position)

	walked := map[string]mgl32.Vec3{}
	s.Walk(func(n *Node, w Transform) {
		walked[n.ID] = w.Position
	})
	assertVec(t, head.World().Position, walked[head.ID])
}

func TestRotatedParentCarriesChildren(t *testing.T) {
	parent := group("P").at(1, 0, 0).rotated(0, 90, 0)
	child := parent.Attach(cube("C", mgl32.Vec3{1, 1, 1}).at(0, 0, -1))
	assertVec(t, mgl32.Vec3{0, 0, 0}, child.World().Position)
}

func TestAttachMovesBetweenParents(t *testing.T) {
	a, b := group("A"), group("B")
	c := a.Attach(cube("C", mgl32.Vec3{1, 1, 1}))
	b.Attach(c)
	assert.Empty(t, a.Children)
	assert.Same(t, b, c.Parent)
}

func TestNodesHaveUniqueIDs(t *testing.T) {
	s := Build(log.Nop())
	seen := map[string]bool{}
	s.Walk(func(n *Node, _ Transform) {
		_, err := uuid.Parse(n.ID)
		require.NoError(t, err)
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	})
}

func TestCylinderSize(t *testing.T) {
	c := cylinder("Hopper", 0.08, 0.2)
	assertVec(t, mgl32.Vec3{0.16, 0.2, 0.16}, c.Size)
	assert.Equal(t, "Cylinder", c.Shape.String())
}

func TestAxisAngle(t *testing.T) {
	angle, axis := Transform{Rotation: mgl32.QuatIdent()}.AxisAngle()
	assert.Zero(t, angle)
	assertVec(t, mgl32.Vec3{0, 1, 0}, axis)

	wand, _ := Build(log.Nop()).Lookup("Steam_Wand")
	angle, axis = wand.World().AxisAngle()
	assert.InDelta(t, 30, angle, 1e-3)
	assertVec(t, mgl32.Vec3{0, 0, -1}, axis)
}

func TestBuildLogsModelIDs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := Build(&log.Logger{SugaredLogger: zap.New(core).Sugar()})

	placed := logs.FilterMessage("model placed").All()
	require.Len(t, placed, 13)
	for _, entry := range placed {
		fields := entry.ContextMap()
		n, ok := s.Lookup(fields["name"].(string))
		require.True(t, ok)
		assert.Equal(t, n.ID, fields["id"])
		assert.Equal(t, n.Parent.Name, fields["root"])
	}
}

func TestPrimitivesSkipUntaggedNodes(t *testing.T) {
	s := Build(log.Nop())
	bar, _ := s.Lookup("Coffee_Bar")
	bar.Tag = ""

	s.Primitives(func(n *Node, _ Transform) {
		assert.NotEqual(t, "Coffee_Bar", n.Name)
	})
}
