package config

import (
	"strings"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

// Config is the user configuration document.
type Config struct {
	Defaults Defaults `yaml:"defaults,omitempty"`
	Settings Settings `yaml:"settings,omitempty"`
}

// Defaults pre-selects categories and pre-fills fields for new messages.
type Defaults struct {
	Tone    composer.Tone    `yaml:"tone,omitempty" validate:"omitempty,tone"`
	Holiday composer.Holiday `yaml:"holiday,omitempty" validate:"omitempty,holiday"`
	Family  composer.Family  `yaml:"family,omitempty" validate:"omitempty,family"`

	Fields composer.FieldSet `yaml:",inline"`
}

// Settings holds process-wide options.
type Settings struct {
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// normalize accepts the same category spellings as the command line flags.
// Unrecognised values are left lowercased for ValidateConfig to report.
func (c *Config) normalize() {
	c.Defaults.Tone = normalizeCategory(c.Defaults.Tone, composer.ParseTone)
	c.Defaults.Holiday = normalizeCategory(c.Defaults.Holiday, composer.ParseHoliday)
	c.Defaults.Family = normalizeCategory(c.Defaults.Family, composer.ParseFamily)
	c.Settings.LogLevel = strings.ToLower(strings.TrimSpace(c.Settings.LogLevel))
}

func normalizeCategory[T ~string](value T, parse func(string) (T, error)) T {
	trimmed := strings.ToLower(strings.TrimSpace(string(value)))
	if trimmed == "" {
		return ""
	}
	parsed, err := parse(trimmed)
	if err != nil {
		return T(trimmed)
	}
	return parsed
}

func (c *Config) applyDefaults() {
	if c.Defaults.Tone == "" {
		c.Defaults.Tone = composer.DefaultTone
	}
	if c.Defaults.Holiday == "" {
		c.Defaults.Holiday = composer.DefaultHoliday
	}
	if c.Defaults.Family == "" {
		c.Defaults.Family = composer.DefaultFamily
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "warn"
	}
}

// Request builds the composer request the defaults describe.
func (d Defaults) Request() composer.Request {
	return composer.Request{
		Fields:  d.Fields,
		Tone:    d.Tone,
		Holiday: d.Holiday,
		Family:  d.Family,
	}
}
