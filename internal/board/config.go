package board

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid board config")

// ConfigError describes the first configuration field that failed validation.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %d %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

type Config struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Bombs      int `json:"bombs"`
	Lives      int `json:"lives"`
	LivesLeft  int `json:"lives_left,omitempty"` // zero means Lives
	Shields    int `json:"shields"`
	DefuseKits int `json:"defuse_kits"`
}

func (c Config) Unpack() (w int, h int, bombs int, lives int) {
	return c.Width, c.Height, c.Bombs, c.Lives
}

func (c Config) Cells() int {
	return c.Width * c.Height
}

// Key identifies boards of the same shape and density.
func (c Config) Key() string {
	return fmt.Sprintf("%dx%d-%d", c.Width, c.Height, c.Bombs)
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return ConfigError{"width", c.Width, "must be positive"}
	case c.Height <= 0:
		return ConfigError{"height", c.Height, "must be positive"}
	case c.Bombs <= 0:
		return ConfigError{"bombs", c.Bombs, "must be positive"}
	case c.Bombs >= c.Cells():
		return ConfigError{
			"bombs", c.Bombs,
			fmt.Sprintf("must leave a safe tile on a %dx%d board", c.Width, c.Height),
		}
	case c.Lives <= 0:
		return ConfigError{"lives", c.Lives, "must be positive"}
	case c.LivesLeft < 0 || c.LivesLeft > c.Lives:
		return ConfigError{"lives_left", c.LivesLeft, fmt.Sprintf("must be within 0..%d", c.Lives)}
	case c.Shields < 0:
		return ConfigError{"shields", c.Shields, "must not be negative"}
	case c.DefuseKits < 0:
		return ConfigError{"defuse_kits", c.DefuseKits, "must not be negative"}
	}
	return nil
}
