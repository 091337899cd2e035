package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Scenes    []SceneConfig   `yaml:"scenes"`
	Camera    CameraConfig    `yaml:"camera"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetsConfig    `yaml:"assets"`
	Preloader PreloaderConfig `yaml:"preloader"`
	LogLevel  string          `yaml:"log_level"`
}

// GraphicsConfig contains window and rendering configuration
type GraphicsConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"`
	Title     string `yaml:"title"`
}

// ScrollConfig contains the virtual scroll physics parameters
type ScrollConfig struct {
	// ContentHeight is the total virtual page height in pixels. The
	// scrollable limit is ContentHeight minus the viewport height.
	ContentHeight    float64 `yaml:"content_height"`
	WheelSensitivity float64 `yaml:"wheel_sensitivity"`
	// SmoothingRate is the exponential easing rate toward the scroll
	// target, in 1/seconds. Higher values feel stiffer.
	SmoothingRate float64 `yaml:"smoothing_rate"`
	// VelocityClamp bounds the published normalized per-frame velocity
	// symmetrically. Spikes from resize or layout shifts are cut here.
	VelocityClamp    float64 `yaml:"velocity_clamp"`
	ScrollToDuration float64 `yaml:"scroll_to_duration"`
}

// SceneConfig describes one narrative scene as a progress sub-range.
// Scene breakpoints are configuration, not code.
type SceneConfig struct {
	Label string  `yaml:"label"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Vec3Config is a point on a camera path
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CameraConfig contains camera projection and path configuration
type CameraConfig struct {
	FOV            float64      `yaml:"fov"`
	Near           float64      `yaml:"near"`
	Far            float64      `yaml:"far"`
	DriftAmplitude float64      `yaml:"drift_amplitude"`
	DriftFrequency float64      `yaml:"drift_frequency"`
	PositionPath   []Vec3Config `yaml:"position_path"`
	TargetPath     []Vec3Config `yaml:"target_path"`
}

// AudioConfig contains the ambient audio configuration
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// AssetsConfig lists external assets loaded through the asset gate
type AssetsConfig struct {
	Models []string `yaml:"models"`
}

// PreloaderConfig controls the reveal gate at startup
type PreloaderConfig struct {
	// MinHeroDwellMS is the minimum time the hero stays scroll-locked,
	// independent of how fast assets load.
	MinHeroDwellMS int `yaml:"min_hero_dwell_ms"`
	// ForceCompleteTimeoutMS force-completes the asset gate when nothing
	// registers within this window, so the preloader never hangs.
	ForceCompleteTimeoutMS int `yaml:"force_complete_timeout_ms"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     1280,
			Height:    800,
			VSync:     true,
			FrameRate: 60,
			Title:     "Meridian Estates",
		},
		Scroll: ScrollConfig{
			ContentHeight:    8000,
			WheelSensitivity: 55,
			SmoothingRate:    6.0,
			VelocityClamp:    0.01,
			ScrollToDuration: 1.2,
		},
		Scenes: []SceneConfig{
			{Label: "hero", Start: 0.0, End: 0.18},
			{Label: "portfolio", Start: 0.18, End: 0.42},
			{Label: "gallery", Start: 0.42, End: 0.66},
			{Label: "analytics", Start: 0.66, End: 0.88},
			{Label: "footer", Start: 0.88, End: 1.0},
		},
		Camera: CameraConfig{
			FOV:            55,
			Near:           0.1,
			Far:            400,
			DriftAmplitude: 0.35,
			DriftFrequency: 0.12,
			PositionPath: []Vec3Config{
				{X: 0, Y: 6, Z: 34},
				{X: 10, Y: 9, Z: 18},
				{X: -8, Y: 12, Z: 2},
				{X: 6, Y: 7, Z: -16},
				{X: 0, Y: 4, Z: -34},
			},
			TargetPath: []Vec3Config{
				{X: 0, Y: 5, Z: 0},
				{X: 4, Y: 7, Z: -4},
				{X: -2, Y: 8, Z: -12},
				{X: 2, Y: 5, Z: -24},
				{X: 0, Y: 3, Z: -44},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Assets: AssetsConfig{
			Models: []string{},
		},
		Preloader: PreloaderConfig{
			MinHeroDwellMS:         2400,
			ForceCompleteTimeoutMS: 4000,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads the configuration from a file, falling back to
// defaults when the file is missing or malformed.
func LoadConfig(filePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config: %v", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
