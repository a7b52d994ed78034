// Package audio plays the countdown tick and the optional ambient loop.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Tick sound shape.
const (
	TickFrequency = 880.0
	TickDuration  = 40 * time.Millisecond
)

// Manager mixes the ambient track and countdown ticks.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	muted       bool

	ambientStreamer beep.StreamSeekCloser
	ambientCtrl     *beep.Ctrl
	ambientVolume   *effects.Volume
	ambientPlaying  bool
	ambientPath     string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	ambientLevel float64
	tickLevel    float64

	// Ticks overlap when the HUD pulses faster than they decay.
	tickMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 0.8,
		ambientLevel: 0.5,
		tickLevel:    0.3,
		tickMixer:    &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.tickMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopAmbientInternal()
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateAmbientVolume()
}

// SetAmbientVolume sets the ambient loop volume (0.0 to 1.0).
func (m *Manager) SetAmbientVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambientLevel = clamp(vol, 0, 1)
	m.updateAmbientVolume()
}

// SetTickVolume sets the countdown tick volume (0.0 to 1.0).
func (m *Manager) SetTickVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickLevel = clamp(vol, 0, 1)
}

// SetMuted silences all output without touching the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateAmbientVolume()
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.updateAmbientVolume()
	return m.muted
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// AmbientVolume returns the ambient loop volume.
func (m *Manager) AmbientVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambientLevel
}

// TickVolume returns the countdown tick volume.
func (m *Manager) TickVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tickLevel
}

func (m *Manager) effective(level float64) float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * level
}

func (m *Manager) updateAmbientVolume() {
	if m.ambientVolume == nil {
		return
	}
	vol := m.effective(m.ambientLevel)
	m.ambientVolume.Silent = vol <= 0
	m.ambientVolume.Volume = volumeToDb(vol)
}

// volumeToDb converts a 0-1 volume to the exponent of effects.Volume with
// base 2, so 0.5 is one halving.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PlayAmbient plays a WAV track, looping it if loop is true.
func (m *Manager) PlayAmbient(data []byte, path string, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopAmbientInternal()

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	var final beep.Streamer = resampled
	if loop {
		final = &loopStreamer{streamer: streamer, resampled: resampled}
	}

	m.ambientCtrl = &beep.Ctrl{Streamer: final}
	m.ambientVolume = &effects.Volume{Streamer: m.ambientCtrl, Base: 2}
	m.updateAmbientVolume()

	m.ambientStreamer = streamer
	m.ambientPath = path
	m.ambientPlaying = true

	speaker.Play(beep.Seq(m.ambientVolume, beep.Callback(func() {
		m.mu.Lock()
		m.ambientPlaying = false
		m.mu.Unlock()
	})))

	return nil
}

// StopAmbient stops the ambient track.
func (m *Manager) StopAmbient() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopAmbientInternal()
}

func (m *Manager) stopAmbientInternal() {
	if m.ambientCtrl != nil {
		speaker.Lock()
		m.ambientCtrl.Paused = true
		speaker.Unlock()
	}
	speaker.Clear()
	if m.initialized {
		speaker.Play(m.tickMixer)
	}
	m.ambientPlaying = false
	if m.ambientStreamer != nil {
		m.ambientStreamer.Close()
		m.ambientStreamer = nil
	}
	m.ambientCtrl = nil
	m.ambientVolume = nil
	m.ambientPath = ""
}

// IsAmbientPlaying returns whether the ambient track is playing.
func (m *Manager) IsAmbientPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambientPlaying
}

// AmbientPath returns the path of the current ambient track.
func (m *Manager) AmbientPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambientPath
}

// PlayTick plays the short countdown blip.
func (m *Manager) PlayTick() error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.effective(m.tickLevel)
	sr := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}
	if vol <= 0 {
		return nil
	}

	speaker.Lock()
	m.tickMixer.Add(&effects.Volume{
		Streamer: TickStreamer(sr, TickFrequency, TickDuration),
		Base:     2,
		Volume:   volumeToDb(vol),
	})
	speaker.Unlock()
	return nil
}

// TickStreamer synthesizes a sine blip with a linear decay envelope.
func TickStreamer(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * env
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// loopStreamer rewinds the source when it runs dry.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.streamer.Seek(0); err != nil {
				return filled, false
			}
			if n == 0 && filled == 0 && l.streamer.Len() == 0 {
				return 0, false
			}
			continue
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
