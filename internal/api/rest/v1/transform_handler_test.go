//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransformContext(t *testing.T, w *httptest.ResponseRecorder, url, body string) *gin.Context {
	t.Helper()
	req, err := http.NewRequest("POST", url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: testKeyID}}
	return c
}

func TestTransformHandler_Encrypt(t *testing.T) {
	mockTransformService := new(MockTransformService)
	handler := NewTransformHandler(mockTransformService)

	mockTransformService.
		On("Encrypt", mock.Anything, testKeyID, []byte("A")).
		Return(rsa.Ciphertext{big.NewInt(2790)}, nil)

	w := httptest.NewRecorder()
	handler.Encrypt(newTransformContext(t, w, "/keys/"+testKeyID+"/encrypt", `{"message": "A"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var response CiphertextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"2790"}, response.Ciphertext)
	mockTransformService.AssertExpectations(t)
}

func TestTransformHandler_Encrypt_KeyNotFound(t *testing.T) {
	mockTransformService := new(MockTransformService)
	handler := NewTransformHandler(mockTransformService)

	mockTransformService.On("Encrypt", mock.Anything, testKeyID, mock.Anything).Return(nil, rsa.ErrKeyNotFound)

	w := httptest.NewRecorder()
	handler.Encrypt(newTransformContext(t, w, "/keys/"+testKeyID+"/encrypt", `{"message": "A"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransformHandler_Decrypt(t *testing.T) {
	mockTransformService := new(MockTransformService)
	handler := NewTransformHandler(mockTransformService)

	mockTransformService.
		On("Decrypt", mock.Anything, testKeyID, mock.MatchedBy(func(c rsa.Ciphertext) bool {
			return len(c) == 1 && c[0].Cmp(big.NewInt(2790)) == 0
		})).
		Return([]byte("A"), nil)

	w := httptest.NewRecorder()
	handler.Decrypt(newTransformContext(t, w, "/keys/"+testKeyID+"/decrypt", `{"ciphertext": ["2790"]}`))

	require.Equal(t, http.StatusOK, w.Code)
	var response PlaintextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "A", response.Message)
	mockTransformService.AssertExpectations(t)
}

func TestTransformHandler_Decrypt_BadRequest(t *testing.T) {
	for _, body := range []string{`{"ciphertext": ["27x0"]}`, `{"ciphertext": [""]}`, `{"ciphertext": 5}`} {
		t.Run(body, func(t *testing.T) {
			mockTransformService := new(MockTransformService)
			handler := NewTransformHandler(mockTransformService)

			w := httptest.NewRecorder()
			handler.Decrypt(newTransformContext(t, w, "/keys/"+testKeyID+"/decrypt", body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockTransformService.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
