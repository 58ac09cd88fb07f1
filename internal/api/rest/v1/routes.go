package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyService rsa.KeyService,
	transformService rsa.TransformService,
	primeService rsa.PrimeService) {

	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.List)
	v1.GET("/keys/:id", keyHandler.GetByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	transformHandler := NewTransformHandler(transformService)
	v1.POST("/keys/:id/encrypt", transformHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", transformHandler.Decrypt)

	primeHandler := NewPrimeHandler(primeService)
	v1.POST("/primes", primeHandler.Generate)
}
