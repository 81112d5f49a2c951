package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createTeamTables(t, db)
	u := &UnitOfWorkImpl{db: db}

	// commit path
	err := u.Do(context.Background(), func(ctx context.Context) error {
		return GetDB(ctx, db).Exec(
			"INSERT INTO teams(id,name,project_id) VALUES (?,?,?)",
			uuid.New().String(), "alpha", uuid.New().String(),
		).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("teams").Count(&count).Error)
	require.Equal(t, int64(1), count)

	// rollback path
	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := GetDB(ctx, db).Exec(
			"INSERT INTO teams(id,name,project_id) VALUES (?,?,?)",
			uuid.New().String(), "beta", uuid.New().String(),
		).Error; err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.Error(t, err)

	require.NoError(t, db.Table("teams").Count(&count).Error)
	require.Equal(t, int64(1), count, "second insert must be rolled back")
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		_ = ctx
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)

	require.Equal(t, db, GetDB(context.Background(), db))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Equal(t, tx, GetDB(txCtx, db))
	tx.Rollback()
}
