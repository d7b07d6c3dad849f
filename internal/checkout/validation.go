package checkout

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

const phoneDigits = 10

// NewValidator returns a validator that reports JSON field names and knows
// the "phone" rule.
func NewValidator() *validator.Validate {

	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})

	return v
}

// ValidPhone accepts exactly 10 digits, or a "+" country code followed by a
// 10 digit national number. Spaces, dashes, dots and parentheses are ignored.
func ValidPhone(phone string) bool {

	var digits strings.Builder
	international := false

	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' && i == 0:
			international = true
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}

	n := digits.Len()
	if international {
		return n > phoneDigits && n <= phoneDigits+3
	}

	return n == phoneDigits
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return fmt.Sprintf("must contain %d digits", phoneDigits)
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("is invalid: %s=%s", fe.Tag(), fe.Param())
	}
}

// structFields validates v and converts every failure into a field error.
func (e *Engine) structFields(v any, prefix string) []errors.FieldError {

	err := e.validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errors.FieldError{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	fields := make([]errors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, errors.FieldError{Field: prefix + fe.Field(), Message: fieldMessage(fe)})
	}

	return fields
}

func (e *Engine) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(e.sanitizer.Sanitize(strings.TrimSpace(s))))
}

func (e *Engine) cleanAddress(f models.AddressForm) models.AddressForm {
	return models.AddressForm{
		Street:  e.clean(f.Street),
		City:    e.clean(f.City),
		State:   e.clean(f.State),
		ZipCode: strings.TrimSpace(f.ZipCode),
	}
}

// ValidateShipping checks every field of the shipping form and reports all
// failures at once.
func (e *Engine) ValidateShipping(form models.ShippingForm, currency string, flow models.Flow) (models.ShippingInput, error) {

	if _, err := e.calc.Config(currency); err != nil {
		return models.ShippingInput{}, err
	}

	form.FullName = e.clean(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.ShippingMethod = strings.TrimSpace(form.ShippingMethod)

	address := e.cleanAddress(models.AddressForm{Street: form.Street, City: form.City, State: form.State, ZipCode: form.ZipCode})
	form.Street, form.City, form.State, form.ZipCode = address.Street, address.City, address.State, address.ZipCode

	fields := e.structFields(form, "")

	if form.ZipCode != "" && !e.calc.ValidPostalCode(currency, form.ZipCode) {
		fields = append(fields, errors.FieldError{Field: "zipCode", Message: "is not a valid postal code"})
	}

	sameBilling := flow == models.FlowBuyNow || form.SameBilling()

	var billing *models.Address

	if !sameBilling {
		if form.Billing == nil {
			fields = append(fields, errors.FieldError{Field: "billing", Message: "is required when billing differs from shipping"})
		} else {
			b := e.cleanAddress(*form.Billing)
			fields = append(fields, e.structFields(b, "billing.")...)

			if b.ZipCode != "" && !e.calc.ValidPostalCode(currency, b.ZipCode) {
				fields = append(fields, errors.FieldError{Field: "billing.zipCode", Message: "is not a valid postal code"})
			}

			billing = &models.Address{Street: b.Street, City: b.City, State: b.State, ZipCode: b.ZipCode}
		}
	}

	if len(fields) > 0 {
		return models.ShippingInput{}, errors.ValidationError("Shipping details are invalid").WithFields(fields...)
	}

	input := models.ShippingInput{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Address: models.Address{
			Street:  form.Street,
			City:    form.City,
			State:   form.State,
			ZipCode: form.ZipCode,
		},
		Method:                models.ShippingMethod(form.ShippingMethod),
		BillingSameAsShipping: true,
	}

	if billing != nil && *billing != input.Address {
		input.BillingSameAsShipping = false
		input.Billing = billing
	}

	return input, nil
}

// ValidatePayment checks the payment form against the currency's accepted methods.
func (e *Engine) ValidatePayment(form models.PaymentForm, currency string) (models.PaymentInput, error) {

	cfg, err := e.calc.Config(currency)
	if err != nil {
		return models.PaymentInput{}, err
	}

	form.PaymentMethod = strings.TrimSpace(form.PaymentMethod)
	form.GatewayToken = strings.TrimSpace(form.GatewayToken)

	fields := e.structFields(form, "")
	method := models.PaymentMethod(form.PaymentMethod)

	if len(fields) == 0 {
		if !cfg.AcceptsPayment(method) {
			fields = append(fields, errors.FieldError{
				Field:   "paymentMethod",
				Message: fmt.Sprintf("is not available for %s orders", cfg.Currency),
			})
		} else if method == models.PaymentCard && form.GatewayToken == "" {
			fields = append(fields, errors.FieldError{Field: "gatewayToken", Message: "is required for card payments"})
		}
	}

	if len(fields) > 0 {
		return models.PaymentInput{}, errors.ValidationError("Payment details are invalid").WithFields(fields...)
	}

	input := models.PaymentInput{Method: method}

	// online and cash on delivery collect nothing client-side
	if method == models.PaymentCard {
		input.GatewayToken = form.GatewayToken
	}

	return input, nil
}

func newSanitizer() *bluemonday.Policy {
	return bluemonday.StrictPolicy()
}
