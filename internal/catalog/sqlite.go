package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seantiz/roster/internal/model"

	_ "modernc.org/sqlite"
)

const createActivitiesTable = `
CREATE TABLE IF NOT EXISTS activities (
    position         INTEGER NOT NULL,
    name             TEXT PRIMARY KEY,
    description      TEXT NOT NULL,
    schedule         TEXT NOT NULL,
    max_participants INTEGER NOT NULL CHECK (max_participants > 0)
)`

const createParticipantsTable = `
CREATE TABLE IF NOT EXISTS participants (
    activity TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    email    TEXT NOT NULL,
    PRIMARY KEY (activity, email)
)`

// SQLiteCatalog reads and writes a seed catalog kept in a SQLite database.
type SQLiteCatalog struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite database at dbPath and creates the catalog
// tables if they do not exist.
func OpenSQLite(dbPath string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		createActivitiesTable,
		createParticipantsTable,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init catalog schema: %w", err)
		}
	}

	return &SQLiteCatalog{db: db}, nil
}

// Close closes the underlying database connection.
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

// Save replaces the stored catalog with cat in a single transaction.
func (c *SQLiteCatalog) Save(ctx context.Context, cat model.Catalog) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM participants"); err != nil {
		return fmt.Errorf("clear participants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM activities"); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}

	for i, a := range cat {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activities (position, name, description, schedule, max_participants)
			VALUES (?, ?, ?, ?, ?)`,
			i, a.Name, a.Description, a.Schedule, a.MaxParticipants,
		); err != nil {
			return fmt.Errorf("insert activity %q: %w", a.Name, err)
		}
		for j, email := range a.Participants {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO participants (activity, position, email) VALUES (?, ?, ?)",
				a.Name, j, email,
			); err != nil {
				return fmt.Errorf("insert participant %q: %w", email, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

// Load reads the stored catalog in position order.
func (c *SQLiteCatalog) Load(ctx context.Context) (model.Catalog, error) {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin read tx: %w", err)
	}
	defer tx.Rollback()

	participants, err := loadParticipants(ctx, tx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT name, description, schedule, max_participants
		FROM activities ORDER BY position, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var cat model.Catalog
	for rows.Next() {
		var name, description, schedule string
		var maxParticipants int
		if err := rows.Scan(&name, &description, &schedule, &maxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a, err := model.NewActivity(name, description, schedule, maxParticipants, participants[name]...)
		if err != nil {
			return nil, err
		}
		cat = append(cat, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return cat, nil
}

func loadParticipants(ctx context.Context, tx *sql.Tx) (map[string][]string, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT activity, email FROM participants ORDER BY activity, position",
	)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var activity, email string
		if err := rows.Scan(&activity, &email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out[activity] = append(out[activity], email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}
