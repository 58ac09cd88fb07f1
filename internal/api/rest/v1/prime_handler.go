package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// PrimeHandler defines the interface for prime generation
type PrimeHandler interface {
	Generate(ctx *gin.Context)
}

type primeHandler struct {
	primeService rsa.PrimeService
}

// NewPrimeHandler creates a new PrimeHandler
func NewPrimeHandler(primeService rsa.PrimeService) PrimeHandler {
	return &primeHandler{primeService: primeService}
}

// Generate handles the POST request that draws a prime
// @Summary Generate a prime
// @Description Search a random prime with trial division, or with the Fermat test when quick is set. Without bounds the predicate's default range is used.
// @Tags Prime
// @Accept json
// @Produce json
// @Param requestBody body PrimeRequest true "Search parameters"
// @Success 200 {object} PrimeResponse
// @Failure 400 {object} ErrorResponse
// @Router /primes [post]
func (handler *primeHandler) Generate(ctx *gin.Context) {
	var request PrimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid prime request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	lower, upper, err := request.Bounds()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	p, err := handler.primeService.Generate(ctx.Request.Context(), request.Quick, lower, upper)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating prime: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, PrimeResponse{Prime: p.String()})
}
