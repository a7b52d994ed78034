package hud

import (
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/neurosummit/internal/countdown"
	"github.com/Faultbox/neurosummit/internal/engine/ui2d"
	"github.com/Faultbox/neurosummit/internal/landing"
)

type textCall struct {
	text  string
	x, y  float32
	px    float32
	color ui2d.Color
}

// recorder is a Canvas that measures every glyph as px/2 wide.
type recorder struct {
	texts  []textCall
	rects  int
	images int
	bars   []float32
}

func (r *recorder) DrawRect(x, y, w, h float32, c ui2d.Color)          { r.rects++ }
func (r *recorder) DrawPanel(x, y, w, h float32, bg, border ui2d.Color) { r.rects++ }
func (r *recorder) ProgressBar(x, y, w, h, fraction float32, track, fill ui2d.Color) {
	r.bars = append(r.bars, fraction)
}
func (r *recorder) DrawText(f ui2d.Font, x, y float32, text string, px float32, c ui2d.Color) {
	r.texts = append(r.texts, textCall{text, x, y, px, c})
}
func (r *recorder) DrawTextSpaced(f ui2d.Font, x, y float32, text string, px, spacing float32, c ui2d.Color) {
	r.texts = append(r.texts, textCall{text, x, y, px, c})
}
func (r *recorder) MeasureText(f ui2d.Font, text string, px, spacing float32) (float32, float32) {
	return float32(len(text)) * (px/2 + spacing), px
}
func (r *recorder) DrawImage(img *ui2d.Image, x, y, w, h, opacity float32) { r.images++ }

func (r *recorder) find(prefix string) (textCall, bool) {
	for _, t := range r.texts {
		if strings.HasPrefix(t.text, prefix) {
			return t, true
		}
	}
	return textCall{}, false
}

func loadedState() *landing.State {
	st := landing.NewState(1280, 720)
	st.Loaded = true
	return st
}

func TestPulse(t *testing.T) {
	h := New()
	start := time.Unix(1000, 0)
	if h.Pulse(start) != 0 {
		t.Fatal("no pulse before any event")
	}
	h.Observe(start, countdown.Event{})
	if h.Pulse(start) != 0 {
		t.Fatal("events without Pulse should not start one")
	}

	h.Observe(start, countdown.Event{Pulse: true})
	tests := []struct {
		after time.Duration
		want  float32
	}{
		{0, 1},
		{250 * time.Millisecond, 0.5},
		{PulseDuration, 0},
		{time.Second, 0},
	}
	for _, tt := range tests {
		if got := h.Pulse(start.Add(tt.after)); got != tt.want {
			t.Errorf("Pulse(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}
}

func TestSectionTop(t *testing.T) {
	st := landing.NewState(1280, 720)
	st.ScrollY = 360
	if got := SectionTop(st, 1); got != -360 {
		t.Errorf("section 1 top = %v", got)
	}
	if got := SectionTop(st, 2); got != 360 {
		t.Errorf("section 2 top = %v", got)
	}
	if !OnScreen(700, 100, 720) || OnScreen(720, 100, 720) || OnScreen(-100, 100, 720) {
		t.Error("OnScreen bounds are wrong")
	}
}

func TestTitleFollowsScroll(t *testing.T) {
	st := loadedState()
	var top recorder
	New().Draw(&top, Frame{State: st, Loading: landing.LoadingStatus{Done: true}})
	start, ok := top.find(TitleText)
	if !ok {
		t.Fatal("title not drawn")
	}
	// 2vw of 1280px.
	if abs(start.px-25.6) > 1e-4 || start.color.A != 1 {
		t.Errorf("title at rest px=%v alpha=%v", start.px, start.color.A)
	}

	st.Progress = 1
	var end recorder
	New().Draw(&end, Frame{State: st, Loading: landing.LoadingStatus{Done: true}})
	scrolled, _ := end.find(TitleText)
	if scrolled.px >= start.px || scrolled.y <= start.y {
		t.Errorf("title should shrink and drop: %+v -> %+v", start, scrolled)
	}
	if a := scrolled.color.A; a < 0.149 || a > 0.151 {
		t.Errorf("title alpha at full progress = %v, want 0.15", a)
	}

	st.Section = 3
	var gone recorder
	New().Draw(&gone, Frame{State: st, Loading: landing.LoadingStatus{Done: true}})
	if _, ok := gone.find(TitleText); ok {
		t.Error("title should be hidden past section 2")
	}
}

func TestCountdownPanel(t *testing.T) {
	st := loadedState()
	st.ScrollY = 720
	st.Section = 2
	d := countdown.Format(countdown.Remaining{Days: 120, Hours: 3, Minutes: 4, Seconds: 5})

	var r recorder
	New().Draw(&r, Frame{State: st, Countdown: d, ShowCountdown: true})
	for _, want := range []string{CountdownHeading, "120", "03", "04", "05", "DAYS", "SECONDS"} {
		if _, ok := r.find(want); !ok {
			t.Errorf("countdown is missing %q", want)
		}
	}

	live := countdown.Format(countdown.Remaining{Live: true})
	var lr recorder
	New().Draw(&lr, Frame{State: st, Countdown: live, ShowCountdown: true})
	heading, ok := lr.find(LiveHeading)
	if !ok {
		t.Fatal("live heading not drawn")
	}
	if heading.color != ui2d.ColorAccent {
		t.Errorf("live heading color = %v", heading.color)
	}
}

func TestCountdownPulseHighlightsSeconds(t *testing.T) {
	st := loadedState()
	st.ScrollY = 720
	now := time.Unix(2000, 0)
	d := countdown.Format(countdown.Remaining{Days: 1, Seconds: 9})

	h := New()
	h.Observe(now, countdown.Event{Pulse: true})
	var r recorder
	h.Draw(&r, Frame{Now: now, State: st, Countdown: d, ShowCountdown: true})

	secs, _ := r.find("09")
	days, _ := r.find("01")
	if secs.px <= days.px {
		t.Errorf("pulsing seconds px %v should exceed days px %v", secs.px, days.px)
	}
	if secs.color == ui2d.ColorText || days.color != ui2d.ColorText {
		t.Errorf("only the seconds should be tinted: seconds %v, days %v", secs.color, days.color)
	}
}

func TestCountdownOffscreen(t *testing.T) {
	st := loadedState()
	var r recorder
	New().Draw(&r, Frame{State: st, Countdown: countdown.Format(countdown.Remaining{}), ShowCountdown: true})
	if _, ok := r.find(CountdownHeading); ok {
		t.Error("countdown in section 2 should not draw at scroll 0")
	}
}

func TestNeuralCanvasVisibility(t *testing.T) {
	st := loadedState()
	img := &ui2d.Image{}

	var r recorder
	New().Draw(&r, Frame{State: st, Neural: img})
	if r.images != 0 {
		t.Error("neural canvas should be off screen in the hero")
	}

	st.ScrollY = 4 * 720
	var r2 recorder
	New().Draw(&r2, Frame{State: st, Neural: img})
	if r2.images != 1 {
		t.Error("neural canvas should draw in section 5")
	}
}

func TestLoadingOverlay(t *testing.T) {
	st := landing.NewState(1280, 720)
	var r recorder
	New().Draw(&r, Frame{State: st, Loading: landing.LoadingStatus{Progress: 42, Opacity: 1}})
	label, ok := r.find(LoadingText)
	if !ok {
		t.Fatal("loading label not drawn")
	}
	if !strings.HasSuffix(label.text, " 42%") {
		t.Errorf("label = %q", label.text)
	}
	if len(r.bars) != 1 || abs(r.bars[0]-0.42) > 1e-6 {
		t.Errorf("progress bars = %v", r.bars)
	}
	if _, ok := r.find(TitleText); ok {
		t.Error("title should wait for the loading screen")
	}

	var done recorder
	New().Draw(&done, Frame{State: st, Loading: landing.LoadingStatus{Progress: 100, Done: true}})
	if len(done.bars) != 0 {
		t.Error("finished loading screen should not draw")
	}
}

func TestStatusLine(t *testing.T) {
	st := loadedState()
	var r recorder
	New().Draw(&r, Frame{State: st, ShowFPS: true, FPS: 59.6, Muted: true})
	line, ok := r.find("60 fps")
	if !ok {
		t.Fatalf("status line missing: %+v", r.texts)
	}
	if !strings.Contains(line.text, "wide") || !strings.HasSuffix(line.text, "muted") {
		t.Errorf("status = %q", line.text)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
