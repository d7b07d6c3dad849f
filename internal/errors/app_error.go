package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError is a single invalid form field, keyed by its JSON name so the
// storefront can render the message next to the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Fields     []FieldError
	Retryable  bool
	Err        error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func (e *AppError) WithFields(fields ...FieldError) *AppError {
	e.Fields = append(e.Fields, fields...)

	return e
}

// HasField reports whether the error names the given form field.
func (e *AppError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}

	return false
}

const (
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeBadRequest            = "BAD_REQUEST"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeConflict              = "CONFLICT"
	ErrCodeInternal              = "INTERNAL_ERROR"
	ErrCodeDatabaseError         = "DATABASE_ERROR"
	ErrCodeCacheError            = "CACHE_ERROR"
	ErrCodeThirdPartyError       = "THIRD_PARTY_ERROR"
	ErrCodeNetworkError          = "NETWORK_ERROR"
	ErrCodeGatewayError          = "GATEWAY_ERROR"
	ErrCodeExpiredIntent         = "EXPIRED_INTENT"
	ErrCodeInvalidShippingMethod = "INVALID_SHIPPING_METHOD"
	ErrCodeUnsupportedCurrency   = "UNSUPPORTED_CURRENCY"
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodeStepMismatch          = "STEP_MISMATCH"
	ErrCodeAlreadySubmitted      = "ALREADY_SUBMITTED"
	ErrCodeSubmissionInFlight    = "SUBMISSION_IN_FLIGHT"
	ErrCodeTooManyRequests       = "TOO_MANY_REQUESTS"
	ErrCodePayloadTooLarge       = "PAYLOAD_TOO_LARGE"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func ConflictError(code, message string) *AppError {
	return NewAppError(code, message, http.StatusConflict)
}

func TooManyRequestsError(message string) *AppError {
	e := NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
	e.Retryable = true

	return e
}

func PayloadTooLargeError(message string) *AppError {
	return NewAppError(ErrCodePayloadTooLarge, message, http.StatusRequestEntityTooLarge)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func CacheError(message string) *AppError {
	return NewAppError(ErrCodeCacheError, message, http.StatusInternalServerError)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusBadGateway)
}

// NetworkError means the backend could not be reached. The caller may resubmit.
func NetworkError(message string) *AppError {
	e := NewAppError(ErrCodeNetworkError, message, http.StatusServiceUnavailable)
	e.Retryable = true

	return e
}

// GatewayError carries a failure reported by the backend or the payment gateway.
// The upstream message is kept verbatim in Detail.
func GatewayError(message string) *AppError {
	e := NewAppError(ErrCodeGatewayError, message, http.StatusBadGateway)
	e.Retryable = true

	return e
}

func ExpiredIntentError(message string) *AppError {
	return NewAppError(ErrCodeExpiredIntent, message, http.StatusGone)
}

func InvalidShippingMethodError(method string) *AppError {
	return NewAppError(ErrCodeInvalidShippingMethod, "Invalid shipping method", http.StatusBadRequest).
		WithFields(FieldError{Field: "shippingMethod", Message: fmt.Sprintf("'%s' is not a supported shipping method", method)})
}

func UnsupportedCurrencyError(currency string) *AppError {
	return NewAppError(ErrCodeUnsupportedCurrency, "Unsupported currency", http.StatusBadRequest).
		WithFields(FieldError{Field: "currency", Message: fmt.Sprintf("'%s' is not a supported currency", currency)})
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason)).
		WithFields(FieldError{Field: field, Message: reason})
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Cannot check out an empty cart", http.StatusBadRequest)
}

// StepMismatchError rejects a form or navigation target that does not fit the
// session's current position.
func StepMismatchError(message string) *AppError {
	return NewAppError(ErrCodeStepMismatch, message, http.StatusBadRequest)
}
