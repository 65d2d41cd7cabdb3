package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `defaults:
  tone: Professional
  holiday: christmas
  name: Ava
  contact: Ben
  return_date: "2024-07-01"
settings:
  log_level: debug
`

	invalidYAML := `defaults: [1, 2
`

	aliasYAML := `defaults:
  holiday: New-Year
  family: mad-lib
`

	badTone := `defaults:
  tone: sarcastic
`

	badLevel := `settings:
  log_level: chatty
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, composer.ToneProfessional, cfg.Defaults.Tone)
				require.Equal(t, composer.HolidayChristmas, cfg.Defaults.Holiday)
				require.Equal(t, composer.FamilyClassic, cfg.Defaults.Family)
				require.Equal(t, "Ava", cfg.Defaults.Fields.Name)
				require.Equal(t, "Ben", cfg.Defaults.Fields.Contact)
				require.Equal(t, "2024-07-01", cfg.Defaults.Fields.ReturnDate)
				require.Equal(t, "debug", cfg.Settings.LogLevel)
			},
		},
		{
			name:     "category aliases match the command line",
			contents: aliasYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, composer.HolidayNewYear, cfg.Defaults.Holiday)
				require.Equal(t, composer.FamilyMadLib, cfg.Defaults.Family)
				require.Equal(t, composer.ToneFun, cfg.Defaults.Tone)
			},
		},
		{
			name:     "empty document uses defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *oooerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.NotEmpty(t, parseErr.Message)
			},
		},
		{
			name:     "unknown tone returns validation error",
			contents: badTone,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *oooerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "defaults.tone", validationErr.Field)
				require.Contains(t, validationErr.Message, "sarcastic")
			},
		},
		{
			name:     "unknown log level returns validation error",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *oooerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "settings.log_level", validationErr.Field)
				require.Contains(t, validationErr.Message, "debug info warn error")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigLineNumbers(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "defaults:\n  tone: fun\n  holiday: [a\n")
	_, err := ParseConfig(path)

	var parseErr *oooerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Positive(t, parseErr.Line)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	var parseErr *oooerrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	cfg, err = Load("", false)
	require.NoError(t, err)
	require.Equal(t, composer.ToneFun, cfg.Defaults.Tone)
}

func TestLoadInvalidFileIsAlwaysAnError(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "defaults:\n  family: haiku\n")
	_, err := Load(path, false)
	require.Error(t, err)
}

func TestDefaultsRequest(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Defaults.Fields.Name = "Ava"

	req := cfg.Defaults.Request()
	require.Equal(t, composer.ToneFun, req.Tone)
	require.Equal(t, composer.HolidayNone, req.Holiday)
	require.Equal(t, composer.FamilyClassic, req.Family)
	require.Equal(t, "Ava", req.Fields.Name)
	require.Equal(t, "warn", cfg.Settings.LogLevel)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, "config.yaml", filepath.Base(path))
	require.Equal(t, "ooo", filepath.Base(filepath.Dir(path)))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
