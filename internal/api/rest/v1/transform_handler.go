package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
)

// TransformHandler defines the interface for encrypting and decrypting with stored keys
type TransformHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type transformHandler struct {
	transformService rsa.TransformService
}

// NewTransformHandler creates a new TransformHandler
func NewTransformHandler(transformService rsa.TransformService) TransformHandler {
	return &transformHandler{
		transformService: transformService,
	}
}

// Encrypt handles the POST request that encrypts a message byte by byte
// @Summary Encrypt a message
// @Tags Transform
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} CiphertextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *transformHandler) Encrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt request: %v", err)})
		return
	}

	cipher, err := handler.transformService.Encrypt(ctx.Request.Context(), keyID, []byte(request.Message))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting with key %s: %v", keyID, err)})
		return
	}

	response := CiphertextResponse{Ciphertext: make([]string, len(cipher))}
	for i, v := range cipher {
		response.Ciphertext[i] = numtheory.FormatDecimal(v)
	}
	ctx.JSON(http.StatusOK, response)
}

// Decrypt handles the POST request that decrypts a list of decimal values
// @Summary Decrypt a ciphertext
// @Tags Transform
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body DecryptRequest true "Ciphertext"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *transformHandler) Decrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	cipher, err := request.ToCiphertext()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	plain, err := handler.transformService.Decrypt(ctx.Request.Context(), keyID, cipher)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting with key %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, PlaintextResponse{Message: string(plain)})
}
