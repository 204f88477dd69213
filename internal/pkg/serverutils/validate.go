package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ums-chatbot-be/internal/pkg/apperr"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and returns a
// tagged validation error listing the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Wrap(apperr.KindInternal, "request validation failed", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return apperr.New(apperr.KindValidation, "invalid request: "+strings.Join(fields, ", "))
}
