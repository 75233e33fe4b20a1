package database

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rs/zerolog/log"
)

// OpenFunc opens a database handle. It exists so tests can substitute an
// opener that counts attempts or returns an in-memory database.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// Manager owns the single shared database handle. The connection is
// established lazily on the first Handle call; concurrent callers block on
// the same attempt rather than racing their own. A failed attempt is
// memoized: the Manager stays unavailable until Reset is called.
//
// Unavailability is a normal state, not an error. Callers branch on the
// second return value of Handle (or on Available) and pick their fallback.
type Manager struct {
	mu        sync.Mutex
	driver    string
	dsn       string
	open      OpenFunc
	db        *sql.DB
	attempted bool
}

// NewManager creates a Manager for the given driver and connection string.
// An empty dsn is valid: the Manager simply reports unavailable.
func NewManager(driver, dsn string) *Manager {
	return &Manager{driver: driver, dsn: dsn, open: sql.Open}
}

// NewManagerWithOpener is NewManager with a custom opener, used by tests.
func NewManagerWithOpener(driver, dsn string, open OpenFunc) *Manager {
	return &Manager{driver: driver, dsn: dsn, open: open}
}

// ManagerForHandle wraps an already-open handle, used by tests that provide
// their own in-memory database.
func ManagerForHandle(db *sql.DB) *Manager {
	return &Manager{db: db, attempted: true, open: sql.Open}
}

// Handle returns the shared handle, connecting on first use. The second
// return value reports whether the backing store is reachable.
func (m *Manager) Handle() (*sql.DB, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.attempted {
		return m.db, m.db != nil
	}
	m.attempted = true

	if m.dsn == "" {
		log.Warn().Msg("no database configured, running without a backing store")
		return nil, false
	}

	db, err := m.open(m.driver, m.dsn)
	if err != nil {
		log.Error().Err(err).Msg("opening database failed, running without a backing store")
		return nil, false
	}
	// Liveness probe before declaring the handle usable.
	if err := db.Ping(); err != nil {
		log.Error().Err(err).Msg("database unreachable, running without a backing store")
		db.Close()
		return nil, false
	}

	m.db = db
	log.Info().Str("driver", m.driver).Msg("database connection established")
	return m.db, true
}

// Available reports whether the backing store is reachable, connecting
// lazily if no attempt has been made yet.
func (m *Manager) Available() bool {
	_, ok := m.Handle()
	return ok
}

// Reset closes any open handle and clears the memoized attempt so the next
// Handle call connects afresh against the given configuration.
func (m *Manager) Reset(driver, dsn string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		m.db.Close()
	}
	m.db = nil
	m.attempted = false
	m.driver = driver
	m.dsn = dsn
}

// ConnString assembles a lib/pq connection string from discrete settings.
func ConnString(host, port, user, password, dbname, sslmode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}
