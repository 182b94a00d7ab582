package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSection(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE user_earnings (id bigserial PRIMARY KEY);
ALTER TABLE user_earnings ADD COLUMN description text;

-- +migrate Down
DROP TABLE user_earnings;
`
	t.Run("Up", func(t *testing.T) {
		up := migrationSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE user_earnings")
		assert.Contains(t, up, "ALTER TABLE user_earnings")
		assert.NotContains(t, up, "DROP TABLE user_earnings")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Down", func(t *testing.T) {
		down := migrationSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE user_earnings")
		assert.NotContains(t, down, "CREATE TABLE user_earnings")
	})
}

func TestMigrateUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "20250101_init.sql")
	content := "-- +migrate Up\nCREATE TABLE test (id int);"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	t.Run("AppliesNewMigration", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("20250101_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE test").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs("20250101_init.sql").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := migrateUp(db, []string{filePath})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SkipsAppliedMigration", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("20250101_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := migrateUp(db, []string{filePath})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
