package composer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = RegisterValidations(v)

		validateInst = v
	})

	return validateInst
}

// RegisterValidations adds the tone, holiday and family tags to v so other
// packages can validate documents that embed these categories.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
		return Tone(fl.Field().String()).Known()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("holiday", func(fl validator.FieldLevel) bool {
		return Holiday(fl.Field().String()).Known()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("family", func(fl validator.FieldLevel) bool {
		return Family(fl.Field().String()).Known()
	})
}

func validateRequest(req Request) error {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return oooerrors.NewValidationError(fe.Tag(), fmt.Sprintf("unknown %s %q", fe.Tag(), fe.Value()), err)
	}

	return oooerrors.NewValidationError("request", err.Error(), err)
}
