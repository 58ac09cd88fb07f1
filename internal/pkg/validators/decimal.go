package validators

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// DecimalTag is the struct tag name of DecimalValidation.
const DecimalTag = "decimal"

// DecimalValidation accepts strings holding a non-negative base-10 integer of any size.
// Empty strings pass so the tag composes with omitempty and required.
func DecimalValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	value := field.String()
	if value == "" {
		return true
	}
	n, ok := new(big.Int).SetString(value, 10)
	return ok && n.Sign() >= 0
}

// New returns a validator with the custom RSA tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(DecimalTag, DecimalValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", DecimalTag, err)
	}
	return validate, nil
}
