package migrations

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	t.Run("applies pending files", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("001_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		dbMock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS restaurant_settings")).WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).WithArgs("001_init.sql").WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := Up(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, []string{"001_init.sql"}, applied)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("skips applied files", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("001_init.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		applied, err := Up(context.Background(), db)
		require.NoError(t, err)
		assert.Empty(t, applied)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})
}
