package utils

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ParseAndValidate decodes the body into dest and validates it, writing the
// error response itself when either step fails.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if validate == nil {
		return true
	}

	if err := validate.Struct(dest); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		response.Error(w, ValidationErrorFrom(err))
		return false
	}

	return true

}

// ValidationErrorFrom converts validator failures into field errors keyed by
// the validator's reported field name.
func ValidationErrorFrom(err error) *appErrors.AppError {

	appErr := appErrors.ValidationError("Validation failed")

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErr.WithDetail(err.Error())
	}

	for _, fe := range validationErrs {
		appErr = appErr.WithFields(appErrors.FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}

	return appErr
}

// ParseID reads a UUID path value.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {

	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Missing '%s' in path", name))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Invalid '%s' format", name)).WithError(err)
	}

	return id, nil
}
