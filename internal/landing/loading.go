package landing

import (
	"time"

	"github.com/Faultbox/neurosummit/internal/procgen"
)

// Loading screen timing.
const (
	DefaultLoadingDelay = 2 * time.Second
	DefaultLoadingFade  = 500 * time.Millisecond
	loadingStep         = 100 * time.Millisecond
	loadingStepMax      = 15.0
)

// Loading gates the first animation tick behind a fixed delay and fade,
// independent of when setup actually finished.
type Loading struct {
	Delay time.Duration
	Fade  time.Duration

	rng      procgen.Rand
	start    time.Time
	lastStep time.Time
	progress float64
}

// LoadingStatus is what the overlay shows for one frame.
type LoadingStatus struct {
	// Progress is the simulated percentage in [0, 100].
	Progress float64
	Opacity  float64
	Done     bool
}

// NewLoading starts the loading screen at start.
func NewLoading(start time.Time, r procgen.Rand) *Loading {
	return &Loading{
		Delay:    DefaultLoadingDelay,
		Fade:     DefaultLoadingFade,
		rng:      r,
		start:    start,
		lastStep: start,
	}
}

// Update advances the simulated progress and returns the overlay status.
func (l *Loading) Update(now time.Time) LoadingStatus {
	for l.progress < 100 && now.Sub(l.lastStep) >= loadingStep {
		l.lastStep = l.lastStep.Add(loadingStep)
		l.progress += l.rng.Float64() * loadingStepMax
	}
	if l.progress > 100 {
		l.progress = 100
	}

	elapsed := now.Sub(l.start)
	st := LoadingStatus{Progress: l.progress, Opacity: 1}
	switch {
	case elapsed >= l.Delay+l.Fade:
		st.Opacity, st.Done = 0, true
	case elapsed > l.Delay:
		st.Opacity = 1 - float64(elapsed-l.Delay)/float64(l.Fade)
	}
	return st
}
