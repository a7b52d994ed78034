package countdown

import (
	"testing"
	"time"
)

func mustTarget(t *testing.T) time.Time {
	t.Helper()
	target, err := ParseTarget(DefaultTarget, time.UTC)
	if err != nil {
		t.Fatalf("ParseTarget() error = %v", err)
	}
	return target
}

func TestParseTarget(t *testing.T) {
	target := mustTarget(t)
	if target.Year() != 2026 || target.Month() != time.January || target.Day() != 9 || target.Hour() != 9 {
		t.Errorf("target = %v", target)
	}
	if _, err := ParseTarget("next tuesday", nil); err == nil {
		t.Error("ParseTarget(garbage) should fail")
	}
}

func TestUntilAndFormat(t *testing.T) {
	target := mustTarget(t)
	tests := []struct {
		name   string
		before time.Duration
		want   Display
	}{
		{
			name:   "25 hours before",
			before: 25 * time.Hour,
			want:   Display{Days: "01", Hours: "01", Minutes: "00", Seconds: "00"},
		},
		{
			name:   "mixed units",
			before: 3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second + 700*time.Millisecond,
			want:   Display{Days: "03", Hours: "04", Minutes: "05", Seconds: "06"},
		},
		{
			name:   "three digit days",
			before: 123*24*time.Hour + time.Second,
			want:   Display{Days: "123", Hours: "00", Minutes: "00", Seconds: "01"},
		},
		{
			name:   "99 days stays two digits",
			before: 99*24*time.Hour + 59*time.Second,
			want:   Display{Days: "99", Hours: "00", Minutes: "00", Seconds: "59"},
		},
		{
			name:   "exactly at target",
			before: 0,
			want:   Display{Days: "00", Hours: "00", Minutes: "00", Seconds: "00", Live: true},
		},
		{
			name:   "after target",
			before: -time.Hour,
			want:   Display{Days: "00", Hours: "00", Minutes: "00", Seconds: "00", Live: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Until(target.Add(-tt.before), target))
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountdownGoesLiveOnce(t *testing.T) {
	target := mustTarget(t)
	c := New(target)

	now := target.Add(-2 * time.Second)
	if _, ev := c.Update(now); ev.WentLive {
		t.Fatal("live before target")
	}

	var lives int
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		if _, ev := c.Update(now); ev.WentLive {
			lives++
		}
	}
	if lives != 1 {
		t.Errorf("WentLive fired %d times, want 1", lives)
	}
	if !c.Live() || !c.Display().Live {
		t.Error("countdown should stay live")
	}
}

func TestCountdownPulseAndInterval(t *testing.T) {
	target := mustTarget(t)
	c := New(target)
	start := target.Add(-time.Hour)

	if _, ev := c.Update(start); ev.Pulse {
		t.Error("first update should not pulse")
	}
	// Within the interval the cached value is returned.
	if d, ev := c.Update(start.Add(300 * time.Millisecond)); ev.Pulse || d.Seconds != "00" {
		t.Errorf("update inside interval = %+v, %+v", d, ev)
	}
	d, ev := c.Update(start.Add(time.Second))
	if !ev.Pulse {
		t.Error("seconds change should pulse")
	}
	if d.Minutes != "59" || d.Seconds != "59" {
		t.Errorf("display = %+v", d)
	}
}
