package persistence

import (
	"context"
	"errors"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobExternalIDRepository implements JobExternalIDRepository using GORM
type GormJobExternalIDRepository struct {
	db *gorm.DB
}

// NewGormJobExternalIDRepository creates a new GormJobExternalIDRepository
func NewGormJobExternalIDRepository(db *gorm.DB) *GormJobExternalIDRepository {
	return &GormJobExternalIDRepository{db: db}
}

// ---------------------------------------------------------------------------
// JobExternalIDReader implementation
// ---------------------------------------------------------------------------

// FindByID finds a mapping by local job ID
func (r *GormJobExternalIDRepository) FindByID(ctx context.Context, id string) (*integration.JobExternalID, error) {
	var model models.JobExternalIDModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalID finds a mapping by downstream MN ID. The
// expression-of-interest path uses this to resolve MN job IDs back to local
// ones.
func (r *GormJobExternalIDRepository) FindByExternalID(ctx context.Context, externalID int64) (*integration.JobExternalID, error) {
	var model models.JobExternalIDModel
	if err := r.db.WithContext(ctx).First(&model, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByID checks whether a mapping exists for a local job ID
func (r *GormJobExternalIDRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobExternalIDModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ---------------------------------------------------------------------------
// JobExternalIDWriter implementation
// ---------------------------------------------------------------------------

// Save inserts a new mapping; duplicates on either column surface as
// ErrMappingAlreadyExists.
func (r *GormJobExternalIDRepository) Save(ctx context.Context, mapping *integration.JobExternalID) error {
	model := models.JobExternalIDModelFromDomain(mapping)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return integration.ErrMappingAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteAll removes all job mappings. Test support only.
func (r *GormJobExternalIDRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.JobExternalIDModel{}).Error
}

// Ensure GormJobExternalIDRepository implements JobExternalIDRepository
var _ integration.JobExternalIDRepository = (*GormJobExternalIDRepository)(nil)
