package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrStoreUnavailable is returned by write operations on durable
	// entities when the backing store is unreachable. Reads never return
	// it; they degrade to empty results instead.
	ErrStoreUnavailable = errors.New("backing store unavailable")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx.
// This allows repository methods to be used within transactions or with a direct DB connection.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// deleteByIDs removes the rows of table whose id is in ids.
func deleteByIDs(ex SQLExecutor, table string, ids []int64) error {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := ex.Exec(`DELETE FROM `+table+` WHERE id IN (`+placeholders(1, len(ids))+`)`, args...)
	return err
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
// This allows for generic scanning helpers.
type scanner interface {
	Scan(dest ...interface{}) error
}

// isUniqueViolation recognizes unique-constraint violations from lib/pq and,
// for the sqlite driver used in tests, by message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
