package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, migrates and truncates the store
// tables. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	_, err = db.Exec(ctx, "TRUNCATE TABLE employees, attendance_records RESTART IDENTITY")
	require.NoError(t, err)
	return db
}
