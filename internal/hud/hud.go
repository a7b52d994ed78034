// Package hud lays out the page overlay: the hero title, the countdown
// panel, the neural canvas, the loading screen and a status line.
package hud

import (
	"fmt"
	"time"

	"github.com/Faultbox/neurosummit/internal/countdown"
	"github.com/Faultbox/neurosummit/internal/engine/ui2d"
	"github.com/Faultbox/neurosummit/internal/landing"
)

// Page layout.
const (
	TitleText        = "NEUROSUMMIT"
	CountdownHeading = "Conference starts in"
	LiveHeading      = "Conference is Live!"
	LoadingText      = "Loading neural pathways"

	CountdownSection = 2
	NeuralSection    = 5
	NeuralWidth      = 800
	NeuralHeight     = 400

	PulseDuration = 500 * time.Millisecond
)

// Canvas is the drawing surface the overlay needs. *ui2d.Renderer
// implements it.
type Canvas interface {
	DrawRect(x, y, w, h float32, c ui2d.Color)
	DrawPanel(x, y, w, h float32, bg, border ui2d.Color)
	ProgressBar(x, y, w, h, fraction float32, track, fill ui2d.Color)
	DrawText(f ui2d.Font, x, y float32, text string, px float32, c ui2d.Color)
	DrawTextSpaced(f ui2d.Font, x, y float32, text string, px, spacing float32, c ui2d.Color)
	MeasureText(f ui2d.Font, text string, px, spacing float32) (float32, float32)
	DrawImage(img *ui2d.Image, x, y, w, h, opacity float32)
}

// Frame is everything the overlay shows for one frame.
type Frame struct {
	Now       time.Time
	State     *landing.State
	Countdown countdown.Display
	// ShowCountdown is false when the countdown is disabled.
	ShowCountdown bool
	Loading       landing.LoadingStatus
	// Neural is the section-5 canvas, nil when disabled.
	Neural  *ui2d.Image
	FPS     float64
	ShowFPS bool
	Muted   bool
}

// HUD keeps the overlay's transient effects between frames.
type HUD struct {
	pulseStart time.Time
}

// New returns an overlay with no active effects.
func New() *HUD {
	return &HUD{}
}

// Observe records countdown events. A seconds change starts the pulse.
func (h *HUD) Observe(now time.Time, ev countdown.Event) {
	if ev.Pulse {
		h.pulseStart = now
	}
}

// Pulse returns the pulse strength in [0, 1], falling linearly over
// PulseDuration.
func (h *HUD) Pulse(now time.Time) float32 {
	if h.pulseStart.IsZero() {
		return 0
	}
	e := now.Sub(h.pulseStart)
	if e < 0 || e >= PulseDuration {
		return 0
	}
	return 1 - float32(e)/float32(PulseDuration)
}

// SectionTop returns the screen y of the top of a 1-based page section.
func SectionTop(st *landing.State, section int) float32 {
	return float32(float64((section-1)*st.Height) - st.ScrollY)
}

// OnScreen reports whether a band from y to y+h intersects the viewport.
func OnScreen(y, h float32, screenH int) bool {
	return y+h > 0 && y < float32(screenH)
}

// Draw queues the whole overlay.
func (h *HUD) Draw(c Canvas, f Frame) {
	st := f.State
	if f.Loading.Done || st.Loaded {
		h.drawTitle(c, st)
		if f.ShowCountdown {
			h.drawCountdown(c, f)
		}
		h.drawNeural(c, f)
	}
	if f.ShowFPS {
		drawStatus(c, f)
	}
	if f.Loading.Opacity > 0 {
		drawLoading(c, st, f.Loading)
	}
}

// drawTitle follows the scroll timeline: the title shrinks, fades, drops
// and tightens as the page scrolls into section 2.
func (h *HUD) drawTitle(c Canvas, st *landing.State) {
	if st.Section > CountdownSection {
		return
	}
	style := landing.Title(st)
	px := float32(style.FontPixels(st.Width))
	spacing := float32(style.LetterSpacingEM) * px
	w, lh := c.MeasureText(ui2d.FontDisplay, TitleText, px, spacing)
	x := (float32(st.Width) - w) / 2
	y := float32(st.Height)*0.22 - lh/2 + float32(style.TranslateY)
	color := ui2d.ColorText.WithAlpha(float32(style.Opacity))
	c.DrawTextSpaced(ui2d.FontDisplay, x, y, TitleText, px, spacing, color)
}

func (h *HUD) drawCountdown(c Canvas, f Frame) {
	st := f.State
	top := SectionTop(st, CountdownSection)
	if !OnScreen(top, float32(st.Height), st.Height) {
		return
	}

	sw := float32(st.Width)
	heading, headingColor := CountdownHeading, ui2d.ColorTextDim
	if f.Countdown.Live {
		heading, headingColor = LiveHeading, ui2d.ColorAccent
	}
	hpx := float32(22)
	hw, _ := c.MeasureText(ui2d.FontDisplay, heading, hpx, 0)
	y := top + float32(st.Height)*0.35
	c.DrawText(ui2d.FontDisplay, (sw-hw)/2, y, heading, hpx, headingColor)

	units := [4][2]string{
		{f.Countdown.Days, "DAYS"},
		{f.Countdown.Hours, "HOURS"},
		{f.Countdown.Minutes, "MINUTES"},
		{f.Countdown.Seconds, "SECONDS"},
	}
	boxW, boxH, gap := float32(120), float32(110), float32(16)
	if st.Device == landing.Narrow {
		boxW, boxH, gap = 76, 80, 8
	}
	total := 4*boxW + 3*gap
	x0 := (sw - total) / 2
	y += 44
	pulse := h.Pulse(f.Now)

	for i, u := range units {
		x := x0 + float32(i)*(boxW+gap)
		border := ui2d.ColorAccentDim
		vpx := boxH * 0.45
		valueColor := ui2d.ColorText
		if i == 3 && pulse > 0 {
			border = border.Lerp(ui2d.ColorAccent, pulse)
			valueColor = valueColor.Lerp(ui2d.ColorAccent, pulse)
			vpx *= 1 + 0.1*pulse
		}
		c.DrawPanel(x, y, boxW, boxH, ui2d.ColorPanelBg, border)

		vw, vh := c.MeasureText(ui2d.FontDisplay, u[0], vpx, 0)
		c.DrawText(ui2d.FontDisplay, x+(boxW-vw)/2, y+boxH*0.42-vh/2, u[0], vpx, valueColor)

		lpx := float32(13)
		lw, _ := c.MeasureText(ui2d.FontSmall, u[1], lpx, 0)
		c.DrawText(ui2d.FontSmall, x+(boxW-lw)/2, y+boxH-lpx-10, u[1], lpx, ui2d.ColorTextDim)
	}
}

func (h *HUD) drawNeural(c Canvas, f Frame) {
	if f.Neural == nil {
		return
	}
	st := f.State
	w := min(float32(NeuralWidth), float32(st.Width)*0.9)
	ht := w * NeuralHeight / NeuralWidth
	y := SectionTop(st, NeuralSection) + (float32(st.Height)-ht)/2
	if !OnScreen(y, ht, st.Height) {
		return
	}
	x := (float32(st.Width) - w) / 2
	c.DrawImage(f.Neural, x, y, w, ht, 1)
}

func drawLoading(c Canvas, st *landing.State, ls landing.LoadingStatus) {
	a := float32(ls.Opacity)
	sw, sh := float32(st.Width), float32(st.Height)
	c.DrawRect(0, 0, sw, sh, ui2d.ColorOverlayBg.Fade(a))

	label := fmt.Sprintf("%s %3.0f%%", LoadingText, ls.Progress)
	px := float32(26)
	lw, _ := c.MeasureText(ui2d.FontSmall, label, px, 0)
	c.DrawText(ui2d.FontSmall, (sw-lw)/2, sh/2-px-16, label, px, ui2d.ColorText.Fade(a))

	barW := min(sw*0.5, 360)
	c.ProgressBar((sw-barW)/2, sh/2, barW, 4, float32(ls.Progress/100),
		ui2d.ColorTrackBg.Fade(a), ui2d.ColorAccent.Fade(a))
}

func drawStatus(c Canvas, f Frame) {
	st := f.State
	line := fmt.Sprintf("%.0f fps  section %d  %s", f.FPS, st.Section, st.Device)
	if f.Muted {
		line += "  muted"
	}
	c.DrawText(ui2d.FontSmall, 8, float32(st.Height)-21, line, 13, ui2d.ColorTextDim)
}
