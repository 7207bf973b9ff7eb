package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/geodash/common"
)

// Settings are the user preferences kept between runs. Command-line flags
// override them for a single run.
type Settings struct {
	Level       string  `toml:"level"`
	WindowScale float64 `toml:"window_scale"`
	Fullscreen  bool    `toml:"fullscreen"`
	VSync       bool    `toml:"vsync"`
	Debug       bool    `toml:"debug"`
	Watch       bool    `toml:"watch"`
}

func Default() Settings {
	return Settings{
		Level:       common.DefaultLevel,
		WindowScale: 0.5,
		VSync:       true,
	}
}

// Path returns ~/.config/geodash/config.toml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: config dir: %w", err)
	}
	return filepath.Join(dir, "geodash", "config.toml"), nil
}

// Load reads the settings at path. A missing file yields the defaults and
// writes them out so there is something to edit.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, Save(path, s)
		}
		return Default(), fmt.Errorf("settings: decode %s: %w", path, err)
	}
	return s.normalize(), nil
}

func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("settings: create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(s.normalize()); err != nil {
		_ = f.Close()
		return fmt.Errorf("settings: encode %s: %w", path, err)
	}
	return f.Close()
}

func (s Settings) normalize() Settings {
	def := Default()
	if s.Level == "" {
		s.Level = def.Level
	}
	if s.WindowScale <= 0 || s.WindowScale > 4 {
		s.WindowScale = def.WindowScale
	}
	return s
}

// WindowSize is the initial window size for the configured scale.
func (s Settings) WindowSize() (int, int) {
	s = s.normalize()
	return int(common.BaseWidth * s.WindowScale), int(common.BaseHeight * s.WindowScale)
}
