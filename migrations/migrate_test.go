// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = MigratePostgres(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(context.Background(), db), ErrNilDB)
	assert.ErrorIs(t, MigrateSQLite(context.Background(), db), ErrNilDB)
}

func TestMigrateSQLite_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(context.Background(), db))
	// idempotent
	require.NoError(t, MigrateSQLite(context.Background(), db))

	_, err = db.Exec(`INSERT INTO device_identity (key, value) VALUES ('app_user_id', 'x')`)
	assert.NoError(t, err)
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	pg, err := fs.Glob(postgresMigrations, "postgres/*.sql")
	require.NoError(t, err)
	assert.Len(t, pg, 3)

	lite, err := fs.Glob(sqliteMigrations, "sqlite/*.sql")
	require.NoError(t, err)
	assert.Len(t, lite, 1)
}
