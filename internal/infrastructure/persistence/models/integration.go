package models

import (
	"time"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// EmployerExternalIDModel is the persistence model for the EmployerExternalID
// mapping. Both columns carry their own unique index so that neither a local
// ID nor a downstream ID can ever be mapped twice.
type EmployerExternalIDModel struct {
	ID             string    `gorm:"type:varchar(64);primaryKey"`
	ExternalID     int64     `gorm:"not null;uniqueIndex:idx_employers_ext_ids_external_id"`
	CreatedAt      time.Time `gorm:"not null"`
	LastModifiedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EmployerExternalIDModel) TableName() string {
	return "employers_ext_ids"
}

// ToDomain converts the persistence model to a domain EmployerExternalID.
func (m *EmployerExternalIDModel) ToDomain() *integration.EmployerExternalID {
	return &integration.EmployerExternalID{
		ID:             m.ID,
		ExternalID:     m.ExternalID,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}
}

// FromDomain populates the persistence model from a domain EmployerExternalID.
func (m *EmployerExternalIDModel) FromDomain(e *integration.EmployerExternalID) {
	m.ID = e.ID
	m.ExternalID = e.ExternalID
	m.CreatedAt = e.CreatedAt
	m.LastModifiedAt = e.LastModifiedAt
}

// EmployerExternalIDModelFromDomain creates a new persistence model from a domain EmployerExternalID.
func EmployerExternalIDModelFromDomain(e *integration.EmployerExternalID) *EmployerExternalIDModel {
	m := &EmployerExternalIDModel{}
	m.FromDomain(e)
	return m
}

// JobExternalIDModel is the persistence model for the JobExternalID mapping.
type JobExternalIDModel struct {
	ID             string    `gorm:"type:varchar(64);primaryKey"`
	ExternalID     int64     `gorm:"not null;uniqueIndex:idx_jobs_ext_ids_external_id"`
	CreatedAt      time.Time `gorm:"not null"`
	LastModifiedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (JobExternalIDModel) TableName() string {
	return "jobs_ext_ids"
}

// ToDomain converts the persistence model to a domain JobExternalID.
func (m *JobExternalIDModel) ToDomain() *integration.JobExternalID {
	return &integration.JobExternalID{
		ID:             m.ID,
		ExternalID:     m.ExternalID,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}
}

// FromDomain populates the persistence model from a domain JobExternalID.
func (m *JobExternalIDModel) FromDomain(j *integration.JobExternalID) {
	m.ID = j.ID
	m.ExternalID = j.ExternalID
	m.CreatedAt = j.CreatedAt
	m.LastModifiedAt = j.LastModifiedAt
}

// JobExternalIDModelFromDomain creates a new persistence model from a domain JobExternalID.
func JobExternalIDModelFromDomain(j *integration.JobExternalID) *JobExternalIDModel {
	m := &JobExternalIDModel{}
	m.FromDomain(j)
	return m
}

// RefDataMappingModel is a row of the reference-data table that maps category
// values to downstream numeric IDs. The table is loaded out of band and is
// read-only for the bridge.
type RefDataMappingModel struct {
	Group      string `gorm:"column:ref_data_group;type:varchar(50);primaryKey"`
	Value      string `gorm:"type:varchar(255);primaryKey"`
	ExternalID int64  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RefDataMappingModel) TableName() string {
	return "ref_data_mappings"
}

// ToDomain converts the persistence model to a domain RefDataMapping.
func (m *RefDataMappingModel) ToDomain() *integration.RefDataMapping {
	return &integration.RefDataMapping{
		Group:      integration.RefDataGroup(m.Group),
		Value:      m.Value,
		ExternalID: m.ExternalID,
	}
}
