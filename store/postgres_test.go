package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// The Postgres backend itself needs a running server; its query shapes
// mirror the SQLite backend covered above. What is backend-specific is the
// driver error mapping, checked here.
func TestIsPgUniqueViolation(t *testing.T) {
	assert.True(t, isPgUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isPgUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isPgUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isPgUniqueViolation(errors.New("unique-ish but not a pg error")))
	assert.False(t, isPgUniqueViolation(nil))
}
