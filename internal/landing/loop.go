package landing

import (
	gomath "math"
	"time"

	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/internal/engine/picking"
	"github.com/Faultbox/neurosummit/internal/procgen"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Animation rates, per tick unless noted.
const (
	SpinRate       = 0.005
	InteriorYawPer = 0.001
	PointerTween   = 2 * time.Second
)

// Renderer draws the two scenes. Implementations own all GPU state.
type Renderer interface {
	RenderHero(rig *procgen.BrainRig, cam *camera.Perspective)
	RenderInterior(in *procgen.Interior, cam *camera.Perspective)
}

// Loop advances the hero and interior scenes once per display refresh.
type Loop struct {
	Rig            *procgen.BrainRig
	Interior       *procgen.Interior // nil when the interior scene is disabled
	HeroCamera     *camera.Perspective
	InteriorCamera *camera.Perspective
	Renderer       Renderer

	epoch time.Time
	spin  float32
	pulse float32
	tilt  Tween
}

// NewLoop creates a loop whose periodic effects are phased from epoch.
func NewLoop(rig *procgen.BrainRig, interior *procgen.Interior, hero, inside *camera.Perspective, r Renderer, epoch time.Time) *Loop {
	return &Loop{
		Rig:            rig,
		Interior:       interior,
		HeroCamera:     hero,
		InteriorCamera: inside,
		Renderer:       r,
		epoch:          epoch,
		pulse:          1,
	}
}

// PointerMoved retargets the pointer-follow tilt. It only reacts in the
// hero section.
func (l *Loop) PointerMoved(now time.Time, st *State) {
	if !st.InHero() {
		return
	}
	k := st.Device.Profile().Sensitivity
	to := math.Vec2{X: st.Pointer.Y * k, Y: st.Pointer.X * k}
	l.tilt = l.tilt.Retarget(now, to, PointerTween)
}

// PointerTarget projects the pointer into the hero scene at PointerDepth.
func (l *Loop) PointerTarget(st *State) math.Vec3 {
	inv := l.HeroCamera.ViewProjection().Inverse()
	ray := picking.FromCamera(l.HeroCamera.Position, st.Pointer.X, st.Pointer.Y, inv)
	return ray.At(PointerDepth)
}

// Tick runs one frame. It does nothing until st.Loaded is set.
func (l *Loop) Tick(now time.Time, st *State) {
	if !st.Loaded {
		return
	}
	t := now.Sub(l.epoch).Seconds()

	if st.InHero() {
		l.animateBrain(t)
	}
	l.placeBrain(now, st)
	l.animateStars(t, st)

	if l.Renderer == nil {
		return
	}
	l.Renderer.RenderHero(l.Rig, l.HeroCamera)

	if st.Section >= 2 && l.Interior != nil && l.InteriorCamera != nil {
		l.InteriorCamera.Orbit(InteriorYawPer, t*1000)
		l.Renderer.RenderInterior(l.Interior, l.InteriorCamera)
	}
}

// Close releases the renderer's resources if it holds any and detaches
// it. Later ticks still animate but draw nothing.
func (l *Loop) Close() {
	if c, ok := l.Renderer.(interface{ Close() }); ok {
		c.Close()
	}
	l.Renderer = nil
}

func (l *Loop) animateBrain(t float64) {
	l.spin += SpinRate
	l.pulse = float32(1 + gomath.Sin(t*1.5)*0.008)

	for i, v := range l.Rig.Veins {
		v.Material.Time = float32(t*2 + float64(i)*0.3)
		v.Rotation.Y = float32(gomath.Sin(t*0.5+float64(i)) * 0.02)
	}
	for i, p := range l.Rig.Pathways {
		p.Material.Opacity = float32(0.4 + gomath.Sin(t*3+float64(i)*0.5)*0.3)
	}
}

// placeBrain applies spin, tilt, scroll scale and pulse to the brain and
// moves the hero camera along the scroll timeline.
func (l *Loop) placeBrain(now time.Time, st *State) {
	tilt := l.tilt.Value(now)
	l.Rig.Brain.Rotation = math.Vec3{X: tilt.X, Y: l.spin + tilt.Y}
	l.Rig.Brain.SetScalar(BrainScale(st) * l.pulse)
	l.HeroCamera.Position.Z = CameraZ(st)
}

func (l *Loop) animateStars(t float64, st *State) {
	if l.Rig.Stars == nil || l.Rig.Stars.Points == nil {
		return
	}
	AnimateParticles(l.Rig.Stars.Points, l.PointerTarget(st), t)
	l.Rig.Stars.Material.Opacity = FieldOpacity(t)
}
