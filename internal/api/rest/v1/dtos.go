package v1

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/validators"
)

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// GenerateKeyRequest holds the parameters of a key generation. Every number is
// an optional base-10 string.
type GenerateKeyRequest struct {
	Quick bool   `json:"quick"`
	Lower string `json:"lower" validate:"omitempty,decimal"`
	Upper string `json:"upper" validate:"omitempty,decimal"`
	P1    string `json:"p1" validate:"omitempty,decimal"`
	P2    string `json:"p2" validate:"omitempty,decimal"`
	E     string `json:"e" validate:"omitempty,decimal"`
}

// Validate checks the request fields
func (r *GenerateKeyRequest) Validate() error {
	return validateStruct(r)
}

// ToOptions converts the request into key generation options.
func (r *GenerateKeyRequest) ToOptions() (*rsa.KeyGenOptions, error) {
	opts := &rsa.KeyGenOptions{Quick: r.Quick}
	for _, field := range []struct {
		value string
		dst   **big.Int
	}{
		{r.Lower, &opts.Lower},
		{r.Upper, &opts.Upper},
		{r.P1, &opts.P1},
		{r.P2, &opts.P2},
		{r.E, &opts.E},
	} {
		v, err := parseOptionalDecimal(field.value)
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}
	return opts, nil
}

// KeyResponse is the public view of a stored key
type KeyResponse struct {
	ID              string    `json:"id"`
	N               string    `json:"n"`
	E               string    `json:"e"`
	PrimeMode       string    `json:"prime_mode"`
	ModulusBits     int       `json:"modulus_bits"`
	Regenerations   int       `json:"regenerations"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// GeneratedKeyResponse is returned once, on creation, and carries the private components.
type GeneratedKeyResponse struct {
	KeyResponse
	P1 string `json:"p1"`
	P2 string `json:"p2"`
	M  string `json:"m"`
	D  string `json:"d"`
}

func newKeyResponse(k *rsa.KeyRecord) KeyResponse {
	return KeyResponse{
		ID:              k.ID,
		N:               k.N,
		E:               k.E,
		PrimeMode:       k.PrimeMode,
		ModulusBits:     k.ModulusBits,
		Regenerations:   k.Regenerations,
		DateTimeCreated: k.DateTimeCreated,
	}
}

func newGeneratedKeyResponse(k *rsa.KeyRecord) GeneratedKeyResponse {
	return GeneratedKeyResponse{
		KeyResponse: newKeyResponse(k),
		P1:          k.P1,
		P2:          k.P2,
		M:           k.M,
		D:           k.D,
	}
}

// EncryptRequest carries the plaintext to encrypt
type EncryptRequest struct {
	Message string `json:"message"`
}

// CiphertextResponse lists one decimal value per plaintext byte
type CiphertextResponse struct {
	Ciphertext []string `json:"ciphertext"`
}

// DecryptRequest carries the ciphertext to decrypt
type DecryptRequest struct {
	Ciphertext []string `json:"ciphertext" validate:"dive,required,decimal"`
}

// Validate checks the request fields
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// ToCiphertext parses the decimal tokens
func (r *DecryptRequest) ToCiphertext() (rsa.Ciphertext, error) {
	cipher := make(rsa.Ciphertext, len(r.Ciphertext))
	for i, token := range r.Ciphertext {
		v, err := numtheory.ParseDecimal(token)
		if err != nil {
			return nil, err
		}
		cipher[i] = v
	}
	return cipher, nil
}

// PlaintextResponse carries a decrypted message
type PlaintextResponse struct {
	Message string `json:"message"`
}

// PrimeRequest selects the predicate and optional bounds of a prime search
type PrimeRequest struct {
	Quick bool   `json:"quick"`
	Lower string `json:"lower" validate:"omitempty,decimal"`
	Upper string `json:"upper" validate:"omitempty,decimal"`
}

// Validate checks the request fields
func (r *PrimeRequest) Validate() error {
	return validateStruct(r)
}

// Bounds parses the optional search bounds
func (r *PrimeRequest) Bounds() (lower, upper *big.Int, err error) {
	if lower, err = parseOptionalDecimal(r.Lower); err != nil {
		return nil, nil, err
	}
	if upper, err = parseOptionalDecimal(r.Upper); err != nil {
		return nil, nil, err
	}
	return lower, upper, nil
}

// PrimeResponse carries a generated prime
type PrimeResponse struct {
	Prime string `json:"prime"`
}

func validateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
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

func parseOptionalDecimal(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return numtheory.ParseDecimal(s)
}
