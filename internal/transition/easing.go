package transition

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Easing maps normalized time in [0,1] to blend progress. Curves should be
// monotonic with f(0)=0 and f(1)=1; others are accepted as given.
type Easing func(t float32) float32

// EaseInOut is the cubic hermite curve 3t²-2t³.
func EaseInOut(t float32) float32 {
	return t * t * (3 - 2*t)
}

func Linear(t float32) float32 {
	return t
}

func SineInOut(t float32) float32 {
	return (1 - math32.Cos(t*math32.Pi)) / 2
}

var easings = map[string]Easing{
	"ease-in-out": EaseInOut,
	"linear":      Linear,
	"sine":        SineInOut,
}

// EasingByName resolves a configured easing curve. An empty name selects
// EaseInOut.
func EasingByName(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EaseInOut, nil
	}
	easing, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("transition: unknown easing %q", name)
	}
	return easing, nil
}
