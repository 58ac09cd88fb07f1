//go:build unit
// +build unit

package numtheory

import (
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("784637716923335095224261902710254454442933591094742482943")
	require.NoError(t, err)
	assert.Equal(t, "784637716923335095224261902710254454442933591094742482943", FormatDecimal(v))

	for _, bad := range []string{"", "12a", "-5", "0x10", " 7"} {
		_, err := ParseDecimal(bad)
		assert.ErrorIs(t, err, rsa.ErrMalformedNumber, "input %q", bad)
	}
}
