package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keyHandler struct {
	keyService rsa.KeyService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService rsa.KeyService) KeyHandler {
	return &keyHandler{
		keyService: keyService,
	}
}

// Generate handles the POST request that generates and stores a key
// @Summary Generate an RSA key
// @Description Generate a textbook RSA key from drawn or supplied primes and store it. The response is the only place the private exponent is returned.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key generation parameters"
// @Success 201 {object} GeneratedKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	opts, err := request.ToOptions()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	record, err := handler.keyService.Generate(ctx.Request.Context(), opts)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, newGeneratedKeyResponse(record))
}

// List handles the GET request to list stored keys with optional query parameters
// @Summary List stored keys
// @Description Fetch public key data filtered by prime mode and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param primeMode query string false "exact, quick or manual"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "id, date_time_created or modulus_bits"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) List(ctx *gin.Context) {
	query := rsa.NewKeyQuery()

	query.PrimeMode = ctx.Query("primeMode")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for _, param := range []struct {
		name string
		dst  *int
	}{
		{"limit", &query.Limit},
		{"offset", &query.Offset},
	} {
		raw := ctx.Query(param.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", param.name, raw)})
			return
		}
		*param.dst = v
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	records, err := handler.keyService.List(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []KeyResponse{}
	for _, record := range records {
		listResponse = append(listResponse, newKeyResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a stored key by ID
// @Summary Retrieve a key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	record, err := handler.keyService.GetByID(ctx.Request.Context(), keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not get key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, newKeyResponse(record))
}

// DeleteByID handles the DELETE request to remove a stored key
// @Summary Delete a key by ID
// @Tags Key
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyService.DeleteByID(ctx.Request.Context(), keyID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}
