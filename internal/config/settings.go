package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// SettingsFile is the fallback name of the appearance settings.
const SettingsFile = "settings.json"

// EnvPrefix prefixes environment variables that override settings,
// e.g. DRAGSTER_FONTSIZE=18.
const EnvPrefix = "DRAGSTER_"

// Settings holds the appearance and geometry of the drop window.
type Settings struct {
	Background  string `koanf:"background" json:"background"` // "r,g,b,a"
	TextColor   string `koanf:"textcolor" json:"textcolor"`
	FontSize    int    `koanf:"fontsize" json:"fontsize"`
	Radius      int    `koanf:"radius" json:"radius"`
	Padding     int    `koanf:"padding" json:"padding"`
	ScrollColor string `koanf:"scroll_color" json:"scroll_color"`
	ScrollWidth int    `koanf:"scroll_width" json:"scroll_width"`
	X           int    `koanf:"x" json:"x"`
	Y           int    `koanf:"y" json:"y"`
	Width       int    `koanf:"width" json:"width"`
	Height      int    `koanf:"height" json:"height"`
}

// Default settings values.
const (
	DefaultBackground  = "255,255,255,0.7"
	DefaultTextColor   = "#DDDDDD"
	DefaultFontSize    = 14
	DefaultRadius      = 10
	DefaultPadding     = 10
	DefaultScrollColor = "#BBBBBB"
	DefaultScrollWidth = 5
	DefaultX           = 100
	DefaultY           = 100
	DefaultWidth       = 100
	DefaultHeight      = 50
)

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Background:  DefaultBackground,
		TextColor:   DefaultTextColor,
		FontSize:    DefaultFontSize,
		Radius:      DefaultRadius,
		Padding:     DefaultPadding,
		ScrollColor: DefaultScrollColor,
		ScrollWidth: DefaultScrollWidth,
		X:           DefaultX,
		Y:           DefaultY,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

func defaultSettingsMap() map[string]interface{} {
	return map[string]interface{}{
		"background":   DefaultBackground,
		"textcolor":    DefaultTextColor,
		"fontsize":     DefaultFontSize,
		"radius":       DefaultRadius,
		"padding":      DefaultPadding,
		"scroll_color": DefaultScrollColor,
		"scroll_width": DefaultScrollWidth,
		"x":            DefaultX,
		"y":            DefaultY,
		"width":        DefaultWidth,
		"height":       DefaultHeight,
	}
}

// LoadSettings returns the settings of the first candidate that can be
// read and decoded, merged over the defaults, together with its path.
// When none can be used the defaults are returned with an empty source.
// DRAGSTER_* environment variables are applied last in both cases; a
// value that cannot be decoded is logged and the environment ignored.
func LoadSettings(candidates []string, logger *slog.Logger) (Settings, string) {
	for _, path := range candidates {
		k, s, err := readSettings(path)
		if err != nil {
			logger.Debug("skip settings candidate", "path", path, "err", err)
			continue
		}
		logger.Info("settings loaded", "path", path)
		return applyEnv(k, s, logger), path
	}
	k, s, err := readSettings("")
	if err != nil {
		logger.Warn("load default settings failed", "err", err)
		return DefaultSettings(), ""
	}
	return applyEnv(k, s, logger), ""
}

// readSettings loads the defaults, then path when non-empty. JSON
// documents may contain comments.
func readSettings(path string) (*koanf.Koanf, Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultSettingsMap(), "."), nil); err != nil {
		return nil, Settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Settings file
	if path != "" {
		if err := loadSettingsFile(k, path); err != nil {
			return nil, Settings{}, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	s, err := decodeSettings(k)
	if err != nil {
		return nil, Settings{}, err
	}
	return k, s, nil
}

func loadSettingsFile(k *koanf.Koanf, path string) error {
	if isYAML(path) {
		return k.Load(file.Provider(path), yaml.Parser())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return k.Load(rawbytes.Provider(jsonc.ToJSON(data)), json.Parser())
}

// applyEnv layers DRAGSTER_* variables over k, e.g. DRAGSTER_SCROLL_WIDTH
// -> scroll_width. On failure s is returned unchanged.
func applyEnv(k *koanf.Koanf, s Settings, logger *slog.Logger) Settings {
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		logger.Warn("ignoring settings environment", "err", err)
		return s
	}
	merged, err := decodeSettings(k)
	if err != nil {
		logger.Warn("ignoring settings environment", "err", err)
		return s
	}
	return merged
}

func decodeSettings(k *koanf.Koanf) (Settings, error) {
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.applyDefaults()
	return s, nil
}

// applyDefaults replaces values the window cannot use.
func (s *Settings) applyDefaults() {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
}
