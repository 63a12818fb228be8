package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrInvalidSettings is wrapped by every settings parse or validation error
var ErrInvalidSettings = errors.New("loaders: invalid settings")

// Settings holds the render parameters read from a JSON settings file.
// The pointer fields override the scene's own value only when present.
type Settings struct {
	SamplesPerPixel int     `json:"spp"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Threads         int     `json:"n_thrd"` // 0 selects the logical CPU count
	Gamma           float64 `json:"gamma"`
	Seed            int64   `json:"seed"`

	FOV             *float64 `json:"fov,omitempty"` // vertical, degrees
	MaxDepth        *int     `json:"max_depth,omitempty"`
	RussianRoulette *float64 `json:"russian_roulette,omitempty"`
	Epsilon         *float64 `json:"epsilon,omitempty"`
}

// DefaultSettings returns the settings used when no file is given
func DefaultSettings() Settings {
	return Settings{
		SamplesPerPixel: 16,
		Width:           784,
		Height:          784,
		Threads:         0,
		Gamma:           0.6,
		Seed:            1,
	}
}

// Validate checks every field for a usable value
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidSettings, s.Width, s.Height)
	case s.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: spp must be positive, got %d", ErrInvalidSettings, s.SamplesPerPixel)
	case s.Threads < 0:
		return fmt.Errorf("%w: n_thrd must not be negative, got %d", ErrInvalidSettings, s.Threads)
	case !(s.Gamma > 0) || math.IsInf(s.Gamma, 0):
		return fmt.Errorf("%w: gamma must be positive, got %g", ErrInvalidSettings, s.Gamma)
	case s.FOV != nil && !(*s.FOV > 0 && *s.FOV < 180):
		return fmt.Errorf("%w: fov must be in (0, 180), got %g", ErrInvalidSettings, *s.FOV)
	case s.MaxDepth != nil && *s.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidSettings, *s.MaxDepth)
	case s.RussianRoulette != nil && !(*s.RussianRoulette > 0 && *s.RussianRoulette < 1):
		return fmt.Errorf("%w: russian_roulette must be in (0, 1), got %g", ErrInvalidSettings, *s.RussianRoulette)
	case s.Epsilon != nil && (!(*s.Epsilon > 0) || math.IsInf(*s.Epsilon, 0)):
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidSettings, *s.Epsilon)
	}
	return nil
}

// ReadSettings decodes a JSON settings document over the defaults and
// validates the result. Unknown fields are ignored.
func ReadSettings(r io.Reader) (Settings, error) {
	settings := DefaultSettings()
	if err := json.NewDecoder(r).Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// LoadSettings reads and validates a JSON settings file
func LoadSettings(filename string) (Settings, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	settings, err := ReadSettings(file)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings from %s: %w", filename, err)
	}
	logger.Infof("loaded settings from %s: %dx%d, %d spp", filename, settings.Width, settings.Height, settings.SamplesPerPixel)
	return settings, nil
}
