package numtheory

import (
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// ParseDecimal parses a non-negative base-10 integer.
func ParseDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", rsa.ErrMalformedNumber, s)
	}
	return v, nil
}

// FormatDecimal renders v in base 10.
func FormatDecimal(v *big.Int) string {
	return v.String()
}
