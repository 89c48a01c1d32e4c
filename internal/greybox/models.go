package greybox

import "github.com/go-gl/mathgl/mgl32"

// Equipment footprints in metres (width, height, depth).
var (
	CoffeeBarSize       = mgl32.Vec3{2.2, 0.9, 0.75}
	SinkSize            = mgl32.Vec3{0.4, 0.2, 0.4}
	EspressoMachineSize = mgl32.Vec3{0.75, 0.5, 0.55}
	CoffeeGrinderSize   = mgl32.Vec3{0.2, 0.6, 0.35}
	KnockBoxSize        = mgl32.Vec3{0.15, 0.15, 0.15}
	PortafilterSize     = mgl32.Vec3{0.07, 0.08, 0.25}
	TamperSize          = mgl32.Vec3{0.06, 0.09, 0.06}
	ShotGlassSize       = mgl32.Vec3{0.05, 0.07, 0.05}
	DemitasseCupSize    = mgl32.Vec3{0.065, 0.06, 0.065}
	CappuccinoCupSize   = mgl32.Vec3{0.1, 0.07, 0.1}
	SaucerSize          = mgl32.Vec3{0.15, 0.02, 0.15}
	SteamPitcherSize    = mgl32.Vec3{0.12, 0.11, 0.09}
	ServingTraySize     = mgl32.Vec3{0.35, 0.03, 0.25}
	SteamClothTraySize  = mgl32.Vec3{0.12, 0.02, 0.12}
)

// Models returns every top-level greybox model with its own children.
func Models() []*Node {
	models := []*Node{
		coffeeBar(),
		espressoMachine(),
		grinder(),
	}
	models = append(models, tools()...)
	models = append(models, cups()...)
	models = append(models,
		cube("Serving_Tray", ServingTraySize).at(0.8, 0.5, 0),
		cube("Steam_Cloth_Tray", SteamClothTraySize).at(0.2, 0.5, -0.2),
	)
	return models
}

func coffeeBar() *Node {
	bar := cube("Coffee_Bar", CoffeeBarSize)
	bar.Attach(cube("Sink", SinkSize).at(0.5, 0.55, 0))
	return bar
}

func espressoMachine() *Node {
	machine := cube("Espresso_Machine", EspressoMachineSize).at(-0.2, 0.7, 0)
	machine.Attach(cylinder("GroupHead_1", 0.03, 0.05).at(-0.15, -0.2, 0.2))
	machine.Attach(cylinder("GroupHead_2", 0.03, 0.05).at(0.15, -0.2, 0.2))
	machine.Attach(cylinder("Steam_Wand", 0.015, 0.3).at(0.3, -0.1, 0.2).rotated(0, 0, -30))
	return machine
}

func grinder() *Node {
	g := cube("Coffee_Grinder", CoffeeGrinderSize).at(-0.8, 0.75, 0)
	g.Attach(cylinder("Hopper", 0.08, 0.2).at(0, 0.4, 0))
	g.Attach(cube("Dosing_Fork", mgl32.Vec3{0.1, 0.02, 0.1}).at(0, -0.25, 0.1))
	return g
}

func tools() []*Node {
	return []*Node{
		portafilter().at(0.3, 0.5, 0.2),
		tamper().at(0.4, 0.5, 0.2),
		cube("Knock_Box", KnockBoxSize).at(0, 0.52, 0.2),
	}
}

func cups() []*Node {
	return []*Node{
		cylinder("Shot_Glass", 0.025, 0.07).at(0.6, 0.5, 0.1),
		cylinder("Demitasse_Cup", 0.0325, 0.06).at(0.6, 0.5, 0.2),
		cylinder("Cappuccino_Cup", 0.05, 0.07).at(0.6, 0.5, 0.3),
		cylinder("Saucer", 0.075, 0.02).at(0.6, 0.5, 0.4),
		steamPitcher().at(0.7, 0.5, 0.2),
	}
}

func portafilter() *Node {
	p := group("Portafilter")
	p.Attach(cube("Handle", mgl32.Vec3{0.02, 0.02, 0.15}).at(0, 0, -0.075))
	p.Attach(cylinder("Basket", 0.035, 0.05).at(0, 0, 0.05))
	p.Attach(cube("Spouts", mgl32.Vec3{0.04, 0.03, 0.06}).at(0, -0.04, 0.05))
	return p
}

func tamper() *Node {
	t := group("Tamper")
	t.Attach(cylinder("Handle", 0.025, 0.06).at(0, 0.03, 0))
	t.Attach(cylinder("Base", 0.029, 0.03).at(0, -0.015, 0))
	return t
}

func steamPitcher() *Node {
	p := group("Steam_Pitcher")
	p.Attach(cylinder("Body", 0.045, 0.11))
	p.Attach(cube("Handle", mgl32.Vec3{0.02, 0.06, 0.02}).at(0.055, 0, 0))
	p.Attach(cube("Spout", mgl32.Vec3{0.03, 0.02, 0.04}).at(-0.045, 0.045, 0).rotated(0, 45, 0))
	return p
}
