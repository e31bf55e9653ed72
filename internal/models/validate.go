package models

import (
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on v and maps failures onto the shared
// validation sentinel, so callers can errors.Is(err, common.ErrorValidation).
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}
	return nil
}
