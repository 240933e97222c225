// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Scene      SceneConfig      `yaml:"scene"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings. The projection aspect ratio comes
// from the drawable size, not from Width/Height.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds asset locations for the house scene.
type SceneConfig struct {
	TextureDir string `yaml:"texture_dir"`
}

// ScreenshotConfig controls where F12 captures are written.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the viewer's stock settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "houseview",
			Width:  1000,
			Height: 800,
			VSync:  true,
		},
		Scene: SceneConfig{
			TextureDir: "textures",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "houseview",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
