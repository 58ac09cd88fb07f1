// cmd/rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/kylepxiao/RSA-Encryption/internal/api/rest/v1"
	"github.com/kylepxiao/RSA-Encryption/internal/app"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/cryptography"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/persistence"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	keys      rsa.KeyService
	transform rsa.TransformService
	primes    rsa.PrimeService
}

type rsaEngines struct {
	keyGenerator rsa.KeyGenerator
	transformer  rsa.Transformer
	exactPrimes  rsa.PrimeGenerator
	quickPrimes  rsa.PrimeGenerator
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database; NewDBConnection runs the migrations
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	engines, err := initializeEngines(&cfg.KeyGen, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rsa engines: %w", err)
	}

	services, err := initializeApplicationServices(engines, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeEngines sets up the random source, prime generators, key generator and transformer
func initializeEngines(settings *config.KeyGenSettings, log logger.Logger) (*rsaEngines, error) {
	source, err := numtheory.NewSource(settings.RandomSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create random source: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(settings, source, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	transformer, err := cryptography.NewTransformer(log, settings.TransformWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to create transformer: %w", err)
	}

	exactPrimes, err := numtheory.NewExactPrimeGenerator(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create exact prime generator: %w", err)
	}

	quickPrimes, err := numtheory.NewFermatPrimeGenerator(source, settings.QuickWitnesses...)
	if err != nil {
		return nil, fmt.Errorf("failed to create quick prime generator: %w", err)
	}

	log.Info("RSA engines initialized with ", settings.RandomSource, " random source")
	return &rsaEngines{
		keyGenerator: keyGenerator,
		transformer:  transformer,
		exactPrimes:  exactPrimes,
		quickPrimes:  quickPrimes,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(engines *rsaEngines, keyRepo rsa.KeyRepository, log logger.Logger) (*appServices, error) {
	keyService, err := app.NewKeyService(engines.keyGenerator, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	transformService, err := app.NewTransformService(engines.transformer, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transform service: %w", err)
	}

	primeService, err := app.NewPrimeService(engines.exactPrimes, engines.quickPrimes, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime service: %w", err)
	}

	return &appServices{
		keys:      keyService,
		transform: transformService,
		primes:    primeService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.services.keys,
		deps.services.transform,
		deps.services.primes,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Key generation can sit in the exponent watchdog for a while; give it room to finish.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.KeyGen.WatchdogTimeout+15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
