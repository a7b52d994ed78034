package landing

import (
	gomath "math"
	"time"
)

// DefaultSections is the number of viewport-high sections on the page.
const DefaultSections = 8

// DefaultScrubLag is how long the scroll timeline takes to catch up.
const DefaultScrubLag = time.Second

// Reactor translates scrolling and resizing into animation parameters.
type Reactor struct {
	Sections int
	ScrubLag time.Duration
}

// NewReactor creates a reactor for a page of the given section count.
func NewReactor(sections int) *Reactor {
	if sections < 1 {
		sections = 1
	}
	return &Reactor{Sections: sections, ScrubLag: DefaultScrubLag}
}

// Resize records a new viewport size and reclassifies the device.
func (r *Reactor) Resize(st *State, width, height int) {
	st.Width, st.Height = width, height
	st.Device = Classify(width)
	r.ScrollTo(st, st.ScrollY)
}

// Scroll moves the page by dy pixels, positive downwards.
func (r *Reactor) Scroll(st *State, dy float64) {
	r.ScrollTo(st, st.ScrollY+dy)
}

// ScrollTo sets the page offset, clamped to the page, and updates the
// active section.
func (r *Reactor) ScrollTo(st *State, y float64) {
	vh := float64(st.Height)
	if vh <= 0 {
		st.ScrollY, st.Section = 0, 1
		return
	}
	st.ScrollY = gomath.Max(0, gomath.Min(y, float64(r.Sections-1)*vh))
	st.Section = min(int(st.ScrollY/vh)+1, r.Sections)
}

// TargetProgress is the unsmoothed timeline position: 0 while section 2
// starts at the viewport bottom, 1 once it reaches the top.
func (r *Reactor) TargetProgress(st *State) float64 {
	if st.Height <= 0 {
		return 0
	}
	return gomath.Max(0, gomath.Min(1, st.ScrollY/float64(st.Height)))
}

// Update advances the smoothed progress towards its target.
func (r *Reactor) Update(st *State, dt time.Duration) {
	target := r.TargetProgress(st)
	if r.ScrubLag <= 0 {
		st.Progress = target
		return
	}
	k := 1 - gomath.Exp(-4*dt.Seconds()/r.ScrubLag.Seconds())
	st.Progress += (target - st.Progress) * k
	if gomath.Abs(target-st.Progress) < 1e-4 {
		st.Progress = target
	}
}

// BrainScale is the scroll-driven brain scale before the pulse.
func BrainScale(st *State) float32 {
	return st.Device.Profile().BrainScale * float32(1+2*st.Progress)
}

// CameraZ is the scroll-driven hero camera distance.
func CameraZ(st *State) float32 {
	return st.Device.Profile().CameraZ - float32(4*st.Progress)
}

// TitleStyle is the hero title appearance along the scroll timeline.
type TitleStyle struct {
	FontVW          float64 // font size, percent of viewport width
	Opacity         float64
	TranslateY      float64 // pixels
	LetterSpacingEM float64
}

// Title returns the title style for st.Progress.
func Title(st *State) TitleStyle {
	p := st.Progress
	return TitleStyle{
		FontVW:          2 + (0.8-2)*p,
		Opacity:         1 - 0.85*p,
		TranslateY:      300 * p,
		LetterSpacingEM: 0.02 + (-0.03-0.02)*p,
	}
}

// FontPixels converts the title font size to pixels for a viewport width.
func (t TitleStyle) FontPixels(width int) float64 {
	return t.FontVW * float64(width) / 100
}
