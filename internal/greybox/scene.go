package greybox

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"BaristaSimulator/internal/log"
)

const (
	COFFEE_BAR_ROOT = "CoffeeBar_Root"
	EQUIPMENT_ROOT  = "Equipment_Root"
	TOOLS_ROOT      = "Tools_Root"
)

// Root offsets. The bar is centred half its height above the floor and the
// countertop items are lifted by the same amount so they rest on it.
var (
	CoffeeBarRootPosition = mgl32.Vec3{0, 0.45, 0}
	EquipmentRootPosition = mgl32.Vec3{0, 0.45, 0}
	ToolsRootPosition     = mgl32.Vec3{0, 0.45, 0}
)

// Scene is the arranged greybox layout.
type Scene struct {
	CoffeeBar *Node
	Equipment *Node
	Tools     *Node

	byName map[string]*Node
	count  int
}

// Build generates every model, sorts them under the three roots and indexes
// the nodes by name.
func Build(logger *log.Logger) *Scene {
	s := &Scene{
		CoffeeBar: group(COFFEE_BAR_ROOT),
		Equipment: group(EQUIPMENT_ROOT),
		Tools:     group(TOOLS_ROOT),
	}

	for _, model := range Models() {
		root := s.rootFor(model.Name)
		root.Attach(model)
		logger.Debugw("model placed", "name", model.Name, "id", model.ID, "root", root.Name)
	}

	s.CoffeeBar.Position = CoffeeBarRootPosition
	s.Equipment.Position = EquipmentRootPosition
	s.Tools.Position = ToolsRootPosition

	s.index()
	logger.Infow("greybox scene built",
		"nodes", s.count,
		"coffee_bar", len(s.CoffeeBar.Children),
		"equipment", len(s.Equipment.Children),
		"tools", len(s.Tools.Children),
	)
	return s
}

func (s *Scene) rootFor(name string) *Node {
	switch {
	case strings.Contains(name, "Coffee_Bar"), strings.Contains(name, "Sink"):
		return s.CoffeeBar
	case strings.Contains(name, "Machine"), strings.Contains(name, "Grinder"):
		return s.Equipment
	default:
		return s.Tools
	}
}

// index maps names to nodes. Names repeat (every tool has a "Handle"); the
// first node reached keeps the name.
func (s *Scene) index() {
	s.byName = make(map[string]*Node)
	s.count = 0
	s.Walk(func(n *Node, _ Transform) {
		s.count++
		if _, exists := s.byName[n.Name]; !exists {
			s.byName[n.Name] = n
		}
	})
}

func (s *Scene) Roots() []*Node {
	return []*Node{s.CoffeeBar, s.Equipment, s.Tools}
}

// Lookup finds a node by name.
func (s *Scene) Lookup(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

// Count is the number of nodes including the roots.
func (s *Scene) Count() int {
	return s.count
}

// Walk visits every node under the roots with its world transform.
func (s *Scene) Walk(fn func(n *Node, world Transform)) {
	for _, root := range s.Roots() {
		root.Walk(fn)
	}
}

// Primitives visits the drawable greybox nodes.
func (s *Scene) Primitives(fn func(n *Node, world Transform)) {
	s.Walk(func(n *Node, world Transform) {
		if n.Tag == GREYBOX_TAG && n.Shape != Group {
			fn(n, world)
		}
	})
}
