package landing

import (
	"time"

	"github.com/Faultbox/neurosummit/pkg/math"
)

// Power2Out decelerates quadratically.
func Power2Out(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Tween interpolates a 2D value over a fixed duration with Power2Out.
type Tween struct {
	From     math.Vec2
	To       math.Vec2
	Start    time.Time
	Duration time.Duration
}

// Value samples the tween at now.
func (tw Tween) Value(now time.Time) math.Vec2 {
	if tw.Duration <= 0 || !now.Before(tw.Start.Add(tw.Duration)) {
		return tw.To
	}
	t := now.Sub(tw.Start).Seconds() / tw.Duration.Seconds()
	if t <= 0 {
		return tw.From
	}
	e := float32(Power2Out(t))
	return tw.From.Add(tw.To.Sub(tw.From).Scale(e))
}

// Retarget starts a new tween from the current value towards to.
func (tw Tween) Retarget(now time.Time, to math.Vec2, d time.Duration) Tween {
	return Tween{From: tw.Value(now), To: to, Start: now, Duration: d}
}
