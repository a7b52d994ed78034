package landing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/internal/engine/model"
	"github.com/Faultbox/neurosummit/internal/procgen"
	"github.com/Faultbox/neurosummit/pkg/math"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Device
	}{
		{320, Narrow},
		{768, Narrow},
		{769, Medium},
		{1024, Medium},
		{1025, Wide},
		{2560, Wide},
	}
	for _, tt := range tests {
		if got := Classify(tt.width); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestDeviceProfiles(t *testing.T) {
	if p := Narrow.Profile(); p.CameraZ != 7 || p.BrainScale != 0.7 {
		t.Errorf("narrow profile = %+v", p)
	}
	if p := Wide.Profile(); p.CameraZ != 5 || p.Sensitivity != 0.3 {
		t.Errorf("wide profile = %+v", p)
	}
}

func TestReactorSections(t *testing.T) {
	r := NewReactor(4)
	st := NewState(1280, 800)

	tests := []struct {
		name    string
		scroll  float64
		section int
		clamped float64
	}{
		{"top", 0, 1, 0},
		{"inside first", 799, 1, 799},
		{"second", 800, 2, 800},
		{"past end", 10000, 4, 2400},
		{"negative", -50, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.ScrollTo(st, tt.scroll)
			if st.Section != tt.section || st.ScrollY != tt.clamped {
				t.Errorf("section = %d, scroll = %v, want %d, %v", st.Section, st.ScrollY, tt.section, tt.clamped)
			}
		})
	}
}

func TestReactorResizeReclassifies(t *testing.T) {
	r := NewReactor(DefaultSections)
	st := NewState(1280, 800)
	r.Resize(st, 700, 900)
	if st.Device != Narrow || st.Width != 700 || st.Height != 900 {
		t.Errorf("after resize: %+v", st)
	}
}

func TestReactorScrubConverges(t *testing.T) {
	r := NewReactor(DefaultSections)
	st := NewState(1280, 800)
	r.ScrollTo(st, 400)

	r.Update(st, 16*time.Millisecond)
	if st.Progress <= 0 || st.Progress >= 0.5 {
		t.Fatalf("progress after one frame = %v, want lagging", st.Progress)
	}
	for i := 0; i < 200; i++ {
		r.Update(st, 16*time.Millisecond)
	}
	if st.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", st.Progress)
	}
}

func TestScrollTimeline(t *testing.T) {
	st := NewState(1280, 800)
	st.Progress = 1
	if got := BrainScale(st); got != 3 {
		t.Errorf("BrainScale() = %v, want 3", got)
	}
	if got := CameraZ(st); got != 1 {
		t.Errorf("CameraZ() = %v, want 1", got)
	}
	title := Title(st)
	if d := title.FontVW - 0.8; d > 1e-9 || d < -1e-9 {
		t.Errorf("FontVW = %v", title.FontVW)
	}
	if d := title.Opacity - 0.15; d > 1e-9 || d < -1e-9 {
		t.Errorf("Opacity = %v", title.Opacity)
	}
	if title.TranslateY != 300 {
		t.Errorf("TranslateY = %v", title.TranslateY)
	}
	if px := Title(NewState(1000, 800)).FontPixels(1000); px != 20 {
		t.Errorf("FontPixels() = %v, want 20", px)
	}
}

func TestTweenPower2Out(t *testing.T) {
	start := time.Unix(0, 0)
	tw := Tween{To: math.Vec2{X: 1, Y: -1}, Start: start, Duration: 2 * time.Second}

	if v := tw.Value(start); v != (math.Vec2{}) {
		t.Errorf("Value(start) = %v", v)
	}
	if v := tw.Value(start.Add(time.Second)); v.X != 0.75 {
		t.Errorf("Value(mid).X = %v, want 0.75", v.X)
	}
	if v := tw.Value(start.Add(5 * time.Second)); v != tw.To {
		t.Errorf("Value(end) = %v", v)
	}
	re := tw.Retarget(start.Add(time.Second), math.Vec2{}, time.Second)
	if re.From.X != 0.75 {
		t.Errorf("Retarget().From = %v", re.From)
	}
}

func TestLoadingGate(t *testing.T) {
	start := time.Unix(100, 0)
	l := NewLoading(start, rand.New(rand.NewSource(1)))

	tests := []struct {
		at      time.Duration
		opacity float64
		done    bool
	}{
		{0, 1, false},
		{time.Second, 1, false},
		{2*time.Second + 250*time.Millisecond, 0.5, false},
		{2*time.Second + 500*time.Millisecond, 0, true},
	}
	for _, tt := range tests {
		st := l.Update(start.Add(tt.at))
		if d := st.Opacity - tt.opacity; d > 1e-9 || d < -1e-9 || st.Done != tt.done {
			t.Errorf("at %v: %+v, want opacity %v done %v", tt.at, st, tt.opacity, tt.done)
		}
	}
	if st := l.Update(start.Add(time.Minute)); st.Progress != 100 {
		t.Errorf("Progress = %v, want 100", st.Progress)
	}
}

func TestRepulsionMonotonic(t *testing.T) {
	target := math.Vec3{}
	prev := float32(-1)
	// Walk inwards: displacement must strictly grow.
	for d := float32(3.4); d > 0.05; d -= 0.1 {
		p := math.Vec3{X: d}
		moved, _ := Repel(p, target)
		disp := moved.Distance(p)
		if disp <= prev {
			t.Fatalf("displacement %v at distance %v not greater than %v", disp, d, prev)
		}
		if moved.X <= p.X {
			t.Fatalf("particle at %v pulled towards the target", d)
		}
		prev = disp
	}
	if moved, force := Repel(math.Vec3{X: 4}, target); force != 0 || moved.X != 4 {
		t.Errorf("outside radius moved to %v with force %v", moved, force)
	}
}

func TestRelaxContracts(t *testing.T) {
	rest := math.Vec3{X: 1, Y: 2, Z: 3}
	v := math.Vec3{X: 5, Y: -4, Z: 9}
	prev := v.Distance(rest)
	for i := 0; i < 400; i++ {
		next := Relax(v, rest)
		d := next.Distance(rest)
		if d > prev {
			t.Fatalf("step %d: distance grew from %v to %v", i, prev, d)
		}
		if (next.X-rest.X)*(v.X-rest.X) < 0 {
			t.Fatalf("step %d overshot", i)
		}
		v, prev = next, d
	}
	if prev > 1e-4 {
		t.Errorf("distance after relaxing = %v", prev)
	}
}

func TestBrighten(t *testing.T) {
	got := Brighten(math.Vec3{X: 0.9, Y: 0.4, Z: 0}, 0.25)
	if got.X != 1 || got.Y < 0.5999 || got.Y > 0.6001 || got.Z != 0 {
		t.Errorf("Brighten() = %v", got)
	}
}

func TestTwinkleRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := Twinkle(i, float64(i)*0.37)
		if s < 0.5 || s > 0.5+4*0.3+1.5 {
			t.Fatalf("Twinkle(%d) = %v", i, s)
		}
	}
}

func TestAnimateParticlesKeepsAlignment(t *testing.T) {
	cfg := procgen.DefaultStarfieldConfig()
	cfg.Count = 200
	ps := procgen.BuildStarfield(procgen.NewRand(3), cfg, nil).Points

	target := ps.Positions[0]
	for tick := 0; tick < 50; tick++ {
		AnimateParticles(ps, target, float64(tick)/60)
		if !ps.Aligned() || len(ps.Original) != ps.Len() {
			t.Fatalf("tick %d: arrays misaligned", tick)
		}
	}
	for i, c := range ps.Colors {
		if c.X > 1 || c.Y > 1 || c.Z > 1 {
			t.Fatalf("particle %d color %v above 1", i, c)
		}
	}
}

type recorder struct {
	hero, interior int
	closed         bool
}

func (r *recorder) Close() { r.closed = true }

func (r *recorder) RenderHero(*procgen.BrainRig, *camera.Perspective)     { r.hero++ }
func (r *recorder) RenderInterior(*procgen.Interior, *camera.Perspective) { r.interior++ }

func testRig() *procgen.BrainRig {
	brain := model.NewNode("brain")
	r := procgen.NewRand(9)
	cfg := procgen.DefaultStarfieldConfig()
	cfg.Count = 50
	rig := &procgen.BrainRig{
		Brain:    brain,
		Veins:    procgen.BuildVeins(r, procgen.VeinConfig{Count: 3, SurfaceRadius: 1.6, TubeRadius: 0.006, RadialSegments: 3}),
		Pathways: procgen.BuildPathways(r, procgen.PathwayConfig{Count: 2, Segments: 8, Radius: 1.56, TubeRadius: 0.008, RadialSegments: 3, BaseOpacity: 0.3}),
		Stars:    procgen.BuildStarfield(r, cfg, nil),
	}
	rig.Scene = model.NewNode("hero").Add(brain, rig.Stars)
	return rig
}

func newTestLoop(rec *recorder, interior bool) (*Loop, time.Time) {
	epoch := time.Unix(1000, 0)
	var in *procgen.Interior
	if interior {
		cfg := procgen.DefaultInteriorConfig()
		cfg.SphereSegments, cfg.Floaters = 8, 10
		in = procgen.BuildInterior(procgen.NewRand(1), cfg, nil)
	}
	return NewLoop(testRig(), in, camera.NewHero(1.6, 5), camera.NewInterior(1.6), rec, epoch), epoch
}

func TestTickNoopBeforeLoaded(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, true)
	st := NewState(1280, 800)
	before := l.Rig.Stars.Points.Positions[0]

	l.Tick(epoch.Add(time.Second), st)

	if rec.hero != 0 || rec.interior != 0 {
		t.Error("rendered before loaded")
	}
	if l.Rig.Stars.Points.Original != nil || l.Rig.Stars.Points.Positions[0] != before {
		t.Error("particles touched before loaded")
	}
	if l.Rig.Brain.Rotation.Y != 0 {
		t.Error("brain spun before loaded")
	}
}

func TestTickHeroSection(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, true)
	st := NewState(1280, 800)
	st.Loaded = true

	for i := 1; i <= 10; i++ {
		l.Tick(epoch.Add(time.Duration(i)*16*time.Millisecond), st)
	}
	if rec.hero != 10 || rec.interior != 0 {
		t.Errorf("renders = %+v, want hero only", rec)
	}
	if got := l.Rig.Brain.Rotation.Y; got < 10*SpinRate-1e-6 || got > 10*SpinRate+1e-6 {
		t.Errorf("spin = %v, want %v", got, 10*SpinRate)
	}
	if s := l.Rig.Brain.Scale.X; s < 0.99 || s > 1.01 {
		t.Errorf("brain scale = %v, want about 1", s)
	}
	for i, p := range l.Rig.Pathways {
		if o := p.Material.Opacity; o < 0.1-1e-6 || o > 0.7+1e-6 {
			t.Errorf("pathway %d opacity %v", i, o)
		}
	}
	if l.Rig.Veins[1].Material.Time == l.Rig.Veins[0].Material.Time {
		t.Error("veins should be phase shifted")
	}
	if o := l.Rig.Stars.Material.Opacity; o < 0.75 || o > 0.95 {
		t.Errorf("field opacity = %v", o)
	}
}

func TestTickInteriorSection(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, true)
	st := NewState(1280, 800)
	st.Loaded = true
	NewReactor(DefaultSections).ScrollTo(st, 2000)

	prevYaw := l.InteriorCamera.Rotation.Y
	for i := 1; i <= 5; i++ {
		l.Tick(epoch.Add(time.Duration(i)*16*time.Millisecond), st)
		if l.InteriorCamera.Rotation.Y <= prevYaw {
			t.Fatalf("tick %d: interior yaw did not increase", i)
		}
		prevYaw = l.InteriorCamera.Rotation.Y
	}
	if rec.hero != 5 || rec.interior != 5 {
		t.Errorf("renders = %+v", rec)
	}
	if l.Rig.Brain.Rotation.Y != 0 {
		t.Error("brain should not spin outside the hero section")
	}
	// The field keeps animating in every section.
	if l.Rig.Stars.Points.Original == nil {
		t.Error("starfield not animated")
	}
}

func TestTickWithoutInterior(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, false)
	st := NewState(1280, 800)
	st.Loaded = true
	NewReactor(DefaultSections).ScrollTo(st, 2000)

	l.Tick(epoch.Add(time.Second), st)
	if rec.hero != 1 || rec.interior != 0 {
		t.Errorf("renders = %+v", rec)
	}
}

func TestLoopClose(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, true)
	st := NewState(1280, 800)
	st.Loaded = true

	l.Close()
	if !rec.closed {
		t.Error("Close should release the renderer")
	}
	l.Tick(epoch.Add(time.Second), st)
	if rec.hero != 0 {
		t.Error("closed loop should not render")
	}
	l.Close()
}

func TestPointerMovedTilts(t *testing.T) {
	rec := &recorder{}
	l, epoch := newTestLoop(rec, false)
	st := NewState(1280, 800)
	st.Loaded = true
	st.Pointer = math.Vec2{X: 1, Y: 0.5}

	l.PointerMoved(epoch, st)
	l.Tick(epoch.Add(3*time.Second), st)

	rot := l.Rig.Brain.Rotation
	if d := rot.X - 0.15; d > 1e-6 || d < -1e-6 {
		t.Errorf("tilt X = %v, want 0.15", rot.X)
	}
	if d := rot.Y - (SpinRate + 0.3); d > 1e-6 || d < -1e-6 {
		t.Errorf("rotation Y = %v, want spin plus 0.3", rot.Y)
	}
}

func TestPointerTargetDepth(t *testing.T) {
	l, _ := newTestLoop(&recorder{}, false)
	st := NewState(1280, 800)
	got := l.PointerTarget(st)
	if got.Distance(math.Vec3{Z: -5}) > 1e-3 {
		t.Errorf("PointerTarget() = %v, want (0, 0, -5)", got)
	}
}
