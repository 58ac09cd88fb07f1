package rsa

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyRecord is the persisted form of a KeyMaterial. Numbers are kept as base-10 strings.
type KeyRecord struct {
	ID              string    `validate:"required,uuid4"`
	P1              string    `validate:"required,numeric"`
	P2              string    `validate:"required,numeric"`
	N               string    `validate:"required,numeric"`
	M               string    `validate:"required,numeric"`
	E               string    `validate:"required,numeric"`
	D               string    `validate:"required,numeric"`
	PrimeMode       string    `validate:"required,oneof=exact quick manual"`
	ModulusBits     int       `validate:"gte=0"`
	Regenerations   int       `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyRecord struct
func (k *KeyRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NewKeyRecord renders key material into its persisted form.
func NewKeyRecord(id string, key *KeyMaterial, primeMode string, regenerations int, created time.Time) *KeyRecord {
	return &KeyRecord{
		ID:              id,
		P1:              key.p1.String(),
		P2:              key.p2.String(),
		N:               key.n.String(),
		M:               key.m.String(),
		E:               key.e.String(),
		D:               key.d.String(),
		PrimeMode:       primeMode,
		ModulusBits:     key.n.BitLen(),
		Regenerations:   regenerations,
		DateTimeCreated: created,
	}
}

// KeyMaterial parses the record back into validated key material.
func (k *KeyRecord) KeyMaterial() (*KeyMaterial, error) {
	values := make([]*big.Int, 0, 4)
	for _, field := range []struct{ name, value string }{
		{"p1", k.P1}, {"p2", k.P2}, {"e", k.E}, {"d", k.D},
	} {
		v, ok := new(big.Int).SetString(field.value, 10)
		if !ok {
			return nil, fmt.Errorf("%w: field %s of key %s", ErrMalformedNumber, field.name, k.ID)
		}
		values = append(values, v)
	}

	key, err := NewKeyMaterial(values[0], values[1], values[2], values[3])
	if err != nil {
		return nil, fmt.Errorf("failed to restore key %s: %w", k.ID, err)
	}
	return key, nil
}

// KeyQuery filters and paginates persisted keys.
type KeyQuery struct {
	PrimeMode       string    `validate:"omitempty,oneof=exact quick manual"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,gt=0"`
	Offset          int       `validate:"omitempty,gte=0"`
	SortBy          string    `validate:"omitempty,oneof=id date_time_created modulus_bits"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery creates a KeyQuery with default values.
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{}
}

// Validate validates the KeyQuery struct based on the defined rules.
func (q *KeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
