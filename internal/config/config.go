// Package config loads the board's TOML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"FreehandBoard/internal/logging"
	"FreehandBoard/internal/state"
)

const (
	appDir     = "freehandboard"
	configFile = "config.toml"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

type Config struct {
	Brush  Brush  `toml:"brush"`
	Undo   Undo   `toml:"undo"`
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
}

type Brush struct {
	Color     string `toml:"color"`
	Thickness int    `toml:"thickness"`
}

type Undo struct {
	Modifiers []string `toml:"modifiers"`
	Key       string   `toml:"key"`
}

type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the settings written on first run.
func Default() Config {
	return Config{
		Brush: Brush{Color: "#000000", Thickness: state.DefaultThickness},
		Undo:  Undo{Modifiers: []string{"LeftControl", "RightControl"}, Key: "Z"},
		Window: Window{
			Title:      "Freehand Board",
			Width:      1024,
			Height:     768,
			Background: "#FFFFFF",
		},
		Log: Log{Level: "info"},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if !hexColor.MatchString(c.Brush.Color) {
		errs = append(errs, fmt.Errorf("brush.color: %q is not a hex color", c.Brush.Color))
	}
	if c.Brush.Thickness < state.MinThickness {
		errs = append(errs, fmt.Errorf("brush.thickness: %d is below %d", c.Brush.Thickness, state.MinThickness))
	}
	if c.Undo.Key == "" {
		errs = append(errs, errors.New("undo.key: must not be empty"))
	}
	if len(c.Undo.Modifiers) == 0 {
		errs = append(errs, errors.New("undo.modifiers: at least one modifier is required"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if !hexColor.MatchString(c.Window.Background) {
		errs = append(errs, fmt.Errorf("window.background: %q is not a hex color", c.Window.Background))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// BrushColor parses Brush.Color.
func (c Config) BrushColor() color.Color {
	return gg.Hex(c.Brush.Color).Color()
}

// BackgroundColor parses Window.Background.
func (c Config) BackgroundColor() color.Color {
	return gg.Hex(c.Window.Background).Color()
}

// UndoChord builds the key chord detector described by the Undo section.
func (c Config) UndoChord() *state.Chord {
	mods := make([]state.Key, 0, len(c.Undo.Modifiers))
	for _, m := range c.Undo.Modifiers {
		mods = append(mods, state.Key(m))
	}
	return state.NewChord(state.Key(c.Undo.Key), mods...)
}

// Read decodes the file at path over the defaults, so missing keys keep
// their default values.
func Read(path string) (Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Default(), fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return conf, nil
}

// Write encodes conf to path, creating parent directories as needed.
func Write(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write config %s: %w", path, err)
	}
	return nil
}

// LoadOrInit reads the config at path, writing the defaults there first
// if the file does not exist yet.
func LoadOrInit(path string) (Config, error) {
	ok, err := exists(path)
	if err != nil {
		return Default(), fmt.Errorf("could not check config %s: %w", path, err)
	}
	if !ok {
		logging.Logger().Info("[CONFIG] initializing config", "path", path)
		if err := Write(path, Default()); err != nil {
			return Default(), err
		}
		return Default(), nil
	}
	return Read(path)
}

// Path returns the config file location under $XDG_CONFIG_HOME, or
// ~/.config when that is unset.
func Path() string {
	return filepath.Join(configDir(), configFile)
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(home, ".config")), appDir)
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	logging.Logger().Debug("[CONFIG] falling back", "env", xdg, "dir", fallback)
	return fallback
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
