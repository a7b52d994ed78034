// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scene     SceneConfig     `yaml:"scene"`
	Countdown CountdownConfig `yaml:"countdown"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	MSAA       int  `yaml:"msaa"`
	ShowFPS    bool `yaml:"show_fps"`
}

// SceneConfig holds procedural content and page layout settings.
type SceneConfig struct {
	Seed          int64         `yaml:"seed"` // 0 seeds from the clock
	Sections      int           `yaml:"sections"`
	Veins         int           `yaml:"veins"`
	Pathways      int           `yaml:"pathways"`
	Stars         int           `yaml:"stars"`
	Interior      bool          `yaml:"interior"`
	NeuralCanvas  bool          `yaml:"neural_canvas"`
	SurfaceDetail bool          `yaml:"surface_detail"`
	LoadingDelay  time.Duration `yaml:"loading_delay"`
	LoadingFade   time.Duration `yaml:"loading_fade"`
}

// CountdownConfig holds the conference countdown settings.
type CountdownConfig struct {
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"` // local time, 2006-01-02T15:04:05
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	Dir              string `yaml:"dir"` // searched before the working directory
	BrainModel       string `yaml:"brain_model"`
	AmbientTrack     string `yaml:"ambient_track"`
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume  float32 `yaml:"master_volume"`
	TickVolume    float32 `yaml:"tick_volume"`
	AmbientVolume float32 `yaml:"ambient_volume"`
	Muted         bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			MSAA:       4,
		},
		Scene: SceneConfig{
			Seed:         0,
			Sections:     8,
			Veins:        40,
			Pathways:     12,
			Stars:        800,
			Interior:     true,
			NeuralCanvas: true,
			LoadingDelay: 2 * time.Second,
			LoadingFade:  500 * time.Millisecond,
		},
		Countdown: CountdownConfig{
			Enabled: true,
			Target:  "2026-01-09T09:00:00",
		},
		Assets: AssetsConfig{
			BrainModel:       "models/brain.glb",
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Audio: AudioConfig{
			MasterVolume:  0.8,
			TickVolume:    0.3,
			AmbientVolume: 0.5,
			Muted:         false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
