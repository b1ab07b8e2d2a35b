package repository

import (
	"context"
	"testing"
	"time"

	"commons/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepositoryGetByID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "display_name", "is_active", "pending_deletion", "created_at", "updated_at"}).
		AddRow(1, "alice", "hash", "Alice", true, false, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(1, 1).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepositoryGetByUsernameMissingIsNil(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositorySetActive(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(false, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetActive(context.Background(), 1, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositorySetPendingDeletion(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "pending_deletion"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetPendingDeletion(context.Background(), 1, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDeleteIfPendingDeletion(t *testing.T) {
	t.Run("deletes when flag still set", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewUserRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1 AND pending_deletion = \$2`).
			WithArgs(1, true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.DeleteIfPendingDeletion(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op when flag was cleared", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewUserRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1 AND pending_deletion = \$2`).
			WithArgs(1, true).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		deleted, err := repo.DeleteIfPendingDeletion(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, deleted, "a cleared flag must abort the deletion")
	})
}

func TestUserRepositoryListPendingDeletionIDs(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE pending_deletion = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(9))

	ids, err := repo.ListPendingDeletionIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 9}, ids)
}
