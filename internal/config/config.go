// Package config loads the optional user settings file. Missing files are
// not an error; the game runs fine on defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Settings is the user-tunable configuration, read from
// $XDG_CONFIG_HOME/vocasnake/config.toml.
type Settings struct {
	VocabPath   string  `toml:"vocab_path"`
	Mute        bool    `toml:"mute"`
	SoundVolume float64 `toml:"sound_volume"`
	WindowScale float64 `toml:"window_scale"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{
		SoundVolume: 0.6,
		WindowScale: 1.0,
	}
}

// Load reads the settings file from the XDG config search path. A missing
// file yields the defaults; a malformed file is an error so typos do not
// silently revert settings.
func Load() (Settings, error) {
	s := Defaults()
	path, err := xdg.SearchConfigFile("vocasnake/config.toml")
	if err != nil {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	s.clamp()
	return s, nil
}

func (s *Settings) clamp() {
	if s.SoundVolume < 0 {
		s.SoundVolume = 0
	} else if s.SoundVolume > 1 {
		s.SoundVolume = 1
	}
	if s.WindowScale < 0.5 {
		s.WindowScale = 0.5
	} else if s.WindowScale > 3 {
		s.WindowScale = 3
	}
}
