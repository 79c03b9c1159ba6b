package persistence

import (
	"context"
	"errors"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEmployerExternalIDRepository implements EmployerExternalIDRepository using GORM
type GormEmployerExternalIDRepository struct {
	db *gorm.DB
}

// NewGormEmployerExternalIDRepository creates a new GormEmployerExternalIDRepository
func NewGormEmployerExternalIDRepository(db *gorm.DB) *GormEmployerExternalIDRepository {
	return &GormEmployerExternalIDRepository{db: db}
}

// ---------------------------------------------------------------------------
// EmployerExternalIDReader implementation
// ---------------------------------------------------------------------------

// FindByID finds a mapping by local employer ID
func (r *GormEmployerExternalIDRepository) FindByID(ctx context.Context, id string) (*integration.EmployerExternalID, error) {
	var model models.EmployerExternalIDModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByExternalID finds a mapping by downstream MN ID
func (r *GormEmployerExternalIDRepository) FindByExternalID(ctx context.Context, externalID int64) (*integration.EmployerExternalID, error) {
	var model models.EmployerExternalIDModel
	if err := r.db.WithContext(ctx).First(&model, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByID checks whether a mapping exists for a local employer ID
func (r *GormEmployerExternalIDRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployerExternalIDModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ---------------------------------------------------------------------------
// EmployerExternalIDWriter implementation
// ---------------------------------------------------------------------------

// Save inserts a new mapping. Uniqueness of both the local and the downstream
// ID is enforced by the table's indexes, so a concurrent duplicate insert
// surfaces here as ErrMappingAlreadyExists rather than racing a prior read.
func (r *GormEmployerExternalIDRepository) Save(ctx context.Context, mapping *integration.EmployerExternalID) error {
	model := models.EmployerExternalIDModelFromDomain(mapping)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return integration.ErrMappingAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteAll removes all employer mappings. Test support only.
func (r *GormEmployerExternalIDRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.EmployerExternalIDModel{}).Error
}

// Ensure GormEmployerExternalIDRepository implements EmployerExternalIDRepository
var _ integration.EmployerExternalIDRepository = (*GormEmployerExternalIDRepository)(nil)
