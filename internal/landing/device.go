package landing

// Device is a viewport width class.
type Device int

const (
	Wide Device = iota
	Medium
	Narrow
)

// Width thresholds in logical pixels, inclusive.
const (
	NarrowMaxWidth = 768
	MediumMaxWidth = 1024
)

// Classify maps a viewport width to its device class.
func Classify(width int) Device {
	switch {
	case width <= NarrowMaxWidth:
		return Narrow
	case width <= MediumMaxWidth:
		return Medium
	default:
		return Wide
	}
}

// Profile holds the per-device framing of the hero scene.
type Profile struct {
	CameraZ     float32
	BrainScale  float32
	Sensitivity float32 // pointer-follow rotation per unit of NDC
}

var profiles = map[Device]Profile{
	Narrow: {CameraZ: 7, BrainScale: 0.7, Sensitivity: 0.15},
	Medium: {CameraZ: 6, BrainScale: 0.85, Sensitivity: 0.22},
	Wide:   {CameraZ: 5, BrainScale: 1, Sensitivity: 0.3},
}

// Profile returns the framing for d.
func (d Device) Profile() Profile {
	return profiles[d]
}

func (d Device) String() string {
	switch d {
	case Narrow:
		return "narrow"
	case Medium:
		return "medium"
	default:
		return "wide"
	}
}
