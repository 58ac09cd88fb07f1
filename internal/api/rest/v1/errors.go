package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rsa.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, rsa.ErrInvalidRange),
		errors.Is(err, rsa.ErrNoPrimeInRange),
		errors.Is(err, rsa.ErrMalformedNumber),
		errors.Is(err, rsa.ErrInvalidKeyMaterial),
		errors.Is(err, rsa.ErrNotInvertible),
		errors.Is(err, rsa.ErrInvalidModulus),
		errors.Is(err, rsa.ErrNegativeExponent),
		errors.Is(err, rsa.ErrKeyGenerationExhausted):
		return http.StatusBadRequest
	case errors.Is(err, rsa.ErrKeyGenerationTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
