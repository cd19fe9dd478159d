package dao

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/database"
)

// newMockDB wires a sqlmock-backed database handle.
func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return database.NewFromSqlx(sqlxDB, logger), mock
}

func strPtr(s string) *string { return &s }
