// Package lighting describes the light rig and fog shared by the lit shaders.
package lighting

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxDirectionalLights is the number of directional slots in the shaders.
const MaxDirectionalLights = 4

// DirectionalLight shines along -Direction from infinitely far away.
type DirectionalLight struct {
	// Direction points from the scene towards the light.
	Direction [3]float32
	Color     [3]float32
	Intensity float32
}

// Fog fades fragments linearly to Color between Near and Far.
type Fog struct {
	Enabled bool
	Color   [3]float32
	Near    float32
	Far     float32
}

// Rig is the complete lighting state of one scene.
type Rig struct {
	Ambient          [3]float32
	AmbientIntensity float32
	Directionals     []DirectionalLight
	Points           *PointLightBuffer
	Fog              Fog
}

// DirectionFrom returns the unit vector towards a light placed at position,
// which is how directional lights aimed at the origin are authored.
func DirectionFrom(position [3]float32) [3]float32 {
	x, y, z := float64(position[0]), float64(position[1]), float64(position[2])
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{float32(x / l), float32(y / l), float32(z / l)}
}

// Hex parses "#rrggbb" into RGB floats. Malformed input yields
// white.
func Hex(s string) [3]float32 {
	c, err := colorful.Hex(s)
	if err != nil {
		return [3]float32{1, 1, 1}
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// HeroRig returns the key, fill, rim and top lights with two accent points
// and near black fog that hides the far starfield.
func HeroRig() Rig {
	r := Rig{
		Ambient:          Hex("#606060"),
		AmbientIntensity: 0.5,
		Directionals: []DirectionalLight{
			{Direction: DirectionFrom([3]float32{4, 7, 6}), Color: Hex("#ffffff"), Intensity: 2.0},
			{Direction: DirectionFrom([3]float32{-6, 4, -3}), Color: Hex("#ffe8d0"), Intensity: 0.6},
			{Direction: DirectionFrom([3]float32{-4, -3, -7}), Color: Hex("#aaccff"), Intensity: 1.4},
			{Direction: DirectionFrom([3]float32{0, 10, 0}), Color: Hex("#ffffff"), Intensity: 0.8},
		},
		Points: NewPointLightBuffer(),
		Fog: Fog{
			Enabled: true,
			Color:   Hex("#000000"),
			Near:    8,
			Far:     15,
		},
	}
	r.Points.AddLight(PointLight{Position: [3]float32{6, 5, 6}, Color: Hex("#6fa99a"), Range: 20, Intensity: 0.4})
	r.Points.AddLight(PointLight{Position: [3]float32{-5, -4, 5}, Color: Hex("#708d7e"), Range: 18, Intensity: 0.35})
	return r
}

// UnlitRig is used by the interior pass, whose materials ignore lights.
func UnlitRig() Rig {
	return Rig{
		Ambient:          [3]float32{1, 1, 1},
		AmbientIntensity: 1,
		Points:           NewPointLightBuffer(),
	}
}

// DirectionalUniforms flattens up to MaxDirectionalLights lights into
// direction and intensity-scaled color arrays plus the active count.
func (r Rig) DirectionalUniforms() (dirs, colors []float32, count int32) {
	dirs = make([]float32, MaxDirectionalLights*3)
	colors = make([]float32, MaxDirectionalLights*3)
	for i, l := range r.Directionals {
		if i >= MaxDirectionalLights {
			break
		}
		copy(dirs[i*3:], l.Direction[:])
		for k := 0; k < 3; k++ {
			colors[i*3+k] = l.Color[k] * l.Intensity
		}
		count++
	}
	return dirs, colors, count
}

// AmbientColor returns the ambient color scaled by its intensity.
func (r Rig) AmbientColor() [3]float32 {
	return [3]float32{
		r.Ambient[0] * r.AmbientIntensity,
		r.Ambient[1] * r.AmbientIntensity,
		r.Ambient[2] * r.AmbientIntensity,
	}
}
