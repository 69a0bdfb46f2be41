package shared

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request DTO and wraps failures in
// the shared validation sentinel.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("%w: %s", httpx.ErrValidation, errs[0].Error())
		}
		return fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return nil
}
