package persistence

import (
	"context"
	"errors"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRefDataRepository implements RefDataTranslator against the read-only
// reference-data table.
type GormRefDataRepository struct {
	db *gorm.DB
}

// NewGormRefDataRepository creates a new GormRefDataRepository
func NewGormRefDataRepository(db *gorm.DB) *GormRefDataRepository {
	return &GormRefDataRepository{db: db}
}

// TranslateID returns the downstream ID for a group and category value.
// Matching on the value is case-insensitive.
func (r *GormRefDataRepository) TranslateID(ctx context.Context, group integration.RefDataGroup, value string) (int64, error) {
	var model models.RefDataMappingModel
	if err := r.db.WithContext(ctx).
		Where("ref_data_group = ? AND LOWER(value) = LOWER(?)", string(group), value).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, integration.NewReferenceDataNotFoundError(group, value)
		}
		return 0, err
	}
	return model.ExternalID, nil
}

// TranslateOptionalID returns nil for an empty value, otherwise delegates to
// TranslateID.
func (r *GormRefDataRepository) TranslateOptionalID(ctx context.Context, group integration.RefDataGroup, value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := r.TranslateID(ctx, group, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Ensure GormRefDataRepository implements RefDataTranslator
var _ integration.RefDataTranslator = (*GormRefDataRepository)(nil)
