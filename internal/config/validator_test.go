package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *oooerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestValidateConfigCategories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "valid", cfg: Config{Defaults: Defaults{Tone: composer.ToneMinimal, Holiday: composer.HolidayNewYear, Family: composer.FamilyMadLib}}},
		{name: "blank values allowed", cfg: Config{}},
		{name: "holiday", cfg: Config{Defaults: Defaults{Holiday: "halloween"}}, field: "defaults.holiday"},
		{name: "family", cfg: Config{Defaults: Defaults{Family: "sonnet"}}, field: "defaults.family"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(&tc.cfg)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *oooerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}
