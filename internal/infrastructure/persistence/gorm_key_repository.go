package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/persistence/models"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based KeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (rsa.KeyRepository, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Create(ctx context.Context, key *rsa.KeyRecord) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	r.logger.Info("Created key with id ", key.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *rsa.KeyQuery) ([]*rsa.KeyRecord, error) {
	if query == nil {
		query = rsa.NewKeyQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyModel{})

	if query.PrimeMode != "" {
		dbQuery = dbQuery.Where("prime_mode = ?", query.PrimeMode)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "date_time_created"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch keys: %w", err)
	}

	records := make([]*rsa.KeyRecord, len(modelList))
	for i, model := range modelList {
		records[i] = model.ToDomain()
	}

	return records, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, keyID string) (*rsa.KeyRecord, error) {
	var model models.KeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key with ID %s: %w", keyID, rsa.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("failed to fetch key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key with ID %s: %w", keyID, rsa.ErrKeyNotFound)
	}

	r.logger.Info("Deleted key with id ", keyID)
	return nil
}
