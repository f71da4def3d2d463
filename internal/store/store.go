package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultDBName is the database file the clinic has always used.
const DefaultDBName = "Login.db"

// Options controls store behavior that the schema itself does not pin down.
type Options struct {
	// CascadeLabImages controls whether DeletePatient also removes the
	// patient's LabImages rows. The historical behavior is to retain them
	// (orphaned), so the default is false.
	CascadeLabImages bool
}

// Store is a thin synchronous facade over a single local SQLite file.
// It holds no connection: every operation opens its own handle, executes,
// and closes it before returning, so a Store value is safe to keep around
// for the lifetime of the application.
type Store struct {
	path string
	opts Options
}

// Open validates the schema at path and returns a Store bound to it.
// Bootstrap is idempotent and additive-only, with one exception: a Queue
// table missing its queue_number or queue_date column is dropped and
// recreated, discarding its rows.
func Open(path string, opts Options) (*Store, error) {
	s := &Store{path: path, opts: opts}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(SchemaSQL); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	if err := ensureQueueTable(db); err != nil {
		return nil, fmt.Errorf("failed to verify Queue table: %w", err)
	}
	return s, nil
}

// Path returns the database file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// open acquires a fresh handle for a single operation. Callers must
// close it on every exit path.
func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", s.path, err)
	}
	return db, nil
}

// =================================================================
// SCHEMA EVOLUTION
// =================================================================

// tableExists probes sqlite_master for a table by name.
func tableExists(db *sql.DB, name string) (bool, error) {
	var found string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// tableColumns returns the column names of a table via PRAGMA table_info.
func tableColumns(db *sql.DB, name string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			colName string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[colName] = true
	}
	return cols, rows.Err()
}

// ensureQueueTable creates the Queue table, or rebuilds it when an older
// database file carries a stale shape. The rebuild is destructive: rows in
// a Queue table without queue_number/queue_date are not worth migrating,
// they belong to a dead daily sequence anyway.
func ensureQueueTable(db *sql.DB) error {
	exists, err := tableExists(db, "Queue")
	if err != nil {
		return err
	}

	if exists {
		cols, err := tableColumns(db, "Queue")
		if err != nil {
			return err
		}
		if cols["queue_number"] && cols["queue_date"] {
			return nil
		}
		log.Warn().Msg("Queue table has a stale shape, dropping and recreating it")
		if _, err := db.Exec("DROP TABLE Queue"); err != nil {
			return err
		}
	}

	_, err = db.Exec(queueSchemaSQL)
	return err
}

// ensureMedicineColumns adds the quantity/administration columns to the
// medicine catalog when a pre-existing file predates them. Runs inline
// with the triggering operation, on its connection.
func ensureMedicineColumns(db *sql.DB) error {
	cols, err := tableColumns(db, "medicine")
	if err != nil {
		return err
	}
	if !cols["quantity"] {
		if _, err := db.Exec("ALTER TABLE medicine ADD COLUMN quantity TEXT DEFAULT ''"); err != nil {
			return err
		}
	}
	if !cols["administration"] {
		if _, err := db.Exec("ALTER TABLE medicine ADD COLUMN administration TEXT DEFAULT ''"); err != nil {
			return err
		}
	}
	return nil
}

// ensureLabImagesTable creates the LabImages table on first use.
func ensureLabImagesTable(db *sql.DB) error {
	_, err := db.Exec(labImagesSchemaSQL)
	return err
}
