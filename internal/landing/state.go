// Package landing drives the hero page: scroll and viewport reaction, the
// loading gate and the per-frame animation of the brain scene.
package landing

import (
	"github.com/Faultbox/neurosummit/pkg/math"
)

// State is the animation context shared by input handling and the frame
// loop. Both run on the render goroutine.
type State struct {
	// Pointer is the cursor in normalized device coordinates.
	Pointer math.Vec2

	Width   int
	Height  int
	Device  Device
	ScrollY float64
	// Section is the 1-based page section under the top of the viewport.
	Section int
	// Progress is the smoothed hero scroll timeline position in [0, 1].
	Progress float64

	Loaded bool
}

// NewState returns the state of a freshly opened page of the given size.
func NewState(width, height int) *State {
	return &State{
		Width:   width,
		Height:  height,
		Device:  Classify(width),
		Section: 1,
	}
}

// InHero reports whether the hero section is active.
func (s *State) InHero() bool {
	return s.Section == 1
}
