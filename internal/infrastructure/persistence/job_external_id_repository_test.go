package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

func TestGormJobExternalIDRepository_FindByExternalID(t *testing.T) {
	t.Run("resolves a downstream job ID back to the local one", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormJobExternalIDRepository(gormDB)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "external_id", "created_at", "last_modified_at"}).
			AddRow("j1", int64(9001), now, now)

		mock.ExpectQuery(`SELECT \* FROM "jobs_ext_ids" WHERE external_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(9001), 1).
			WillReturnRows(rows)

		mapping, err := repo.FindByExternalID(context.Background(), 9001)

		require.NoError(t, err)
		assert.Equal(t, "j1", mapping.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing row to ErrMappingNotFound", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormJobExternalIDRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "jobs_ext_ids" WHERE external_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(404404), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByExternalID(context.Background(), 404404)
		assert.ErrorIs(t, err, integration.ErrMappingNotFound)
	})
}

func TestGormJobExternalIDRepository_Save(t *testing.T) {
	t.Run("inserts a new mapping", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormJobExternalIDRepository(gormDB)

		mapping, err := integration.NewJobExternalID("j1", 9001)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "jobs_ext_ids"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(context.Background(), mapping))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a unique violation to ErrMappingAlreadyExists", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormJobExternalIDRepository(gormDB)

		mapping, err := integration.NewJobExternalID("j1", 9001)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "jobs_ext_ids"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err = repo.Save(context.Background(), mapping)
		assert.ErrorIs(t, err, integration.ErrMappingAlreadyExists)
	})
}
