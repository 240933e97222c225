package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file the viewer looks for.
const FileName = "houseview.yaml"

// EnvConfig names a config file when --config is not given.
const EnvConfig = "HOUSEVIEW_CONFIG"

// Load builds the config from defaults, then the first config file found,
// then command-line flags.
func Load() (*Config, error) {
	cfg := Default()

	if path := locate(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scene.TextureDir == "" {
		return fmt.Errorf("texture directory must not be empty")
	}
	return nil
}

// locate picks the config file. An explicit --config or $HOUSEVIEW_CONFIG
// is returned even if missing so the read error surfaces.
func locate() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// searchDirs lists the working directory, the directory holding the binary
// (where a bundled scene keeps its textures) and the user config directory.
func searchDirs() []string {
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if dir := ConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return dirs
}

// ConfigDir returns the per-user config directory, or "" when the OS
// reports none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "houseview")
}

// loadFromFile merges a YAML file over the values already in cfg. A relative
// texture_dir set by the file is taken relative to the file itself.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	before := cfg.Scene.TextureDir
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if dir := cfg.Scene.TextureDir; dir != before && dir != "" && !filepath.IsAbs(dir) {
		cfg.Scene.TextureDir = filepath.Join(filepath.Dir(path), dir)
	}
	return nil
}
