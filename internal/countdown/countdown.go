// Package countdown computes the time left until the conference opens and
// formats it for the HUD.
package countdown

import (
	"fmt"
	"time"
)

// DefaultTarget is the conference opening in local time.
const DefaultTarget = "2026-01-09T09:00:00"

// LiveTitle replaces the countdown heading once the target has passed.
const LiveTitle = "Conference is Live!"

// LiveColor is the hex color of the live title.
const LiveColor = "#6fa99a"

const layout = "2006-01-02T15:04:05"

// ParseTarget parses a local wall-clock timestamp such as DefaultTarget.
func ParseTarget(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse countdown target %q: %w", s, err)
	}
	return t, nil
}

// Remaining is a duration split into display units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Live    bool
}

// Until splits target-now into whole units. At or after the target every
// unit is zero and Live is set.
func Until(now, target time.Time) Remaining {
	left := target.Sub(now)
	if left <= 0 {
		return Remaining{Live: true}
	}
	return Remaining{
		Days:    int(left / (24 * time.Hour)),
		Hours:   int(left % (24 * time.Hour) / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
	}
}

// Display is the zero-padded text of each unit.
type Display struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
	Live    bool
}

// Format pads days to three digits from 100 upward and to two otherwise.
// Hours, minutes and seconds always have two digits.
func Format(r Remaining) Display {
	days := fmt.Sprintf("%02d", r.Days)
	if r.Days >= 100 {
		days = fmt.Sprintf("%03d", r.Days)
	}
	return Display{
		Days:    days,
		Hours:   fmt.Sprintf("%02d", r.Hours),
		Minutes: fmt.Sprintf("%02d", r.Minutes),
		Seconds: fmt.Sprintf("%02d", r.Seconds),
		Live:    r.Live,
	}
}

// Event reports what changed in one update.
type Event struct {
	// Pulse is set when the seconds text changed.
	Pulse bool
	// WentLive is set on the single update that first observes the target.
	WentLive bool
}

// Countdown tracks the displayed value between updates. It refreshes at
// most once per Interval.
type Countdown struct {
	Target   time.Time
	Interval time.Duration

	display   Display
	lastCheck time.Time
	started   bool
	live      bool
}

// New returns a countdown towards target refreshed once per second.
func New(target time.Time) *Countdown {
	return &Countdown{Target: target, Interval: time.Second}
}

// Display returns the most recently computed text.
func (c *Countdown) Display() Display {
	return c.display
}

// Live reports whether the target has been reached.
func (c *Countdown) Live() bool {
	return c.live
}

// Update recomputes the display if an interval has elapsed since the last
// refresh. The first call always refreshes.
func (c *Countdown) Update(now time.Time) (Display, Event) {
	if c.started && now.Sub(c.lastCheck) < c.Interval {
		return c.display, Event{}
	}
	first := !c.started
	c.started = true
	c.lastCheck = now

	d := Format(Until(now, c.Target))
	var ev Event
	if d.Live {
		if !c.live {
			c.live = true
			ev.WentLive = true
		}
	} else if !first && d.Seconds != c.display.Seconds {
		ev.Pulse = true
	}
	c.display = d
	return d, ev
}
