package storage

import (
	"database/sql"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	_ "github.com/mattn/go-sqlite3"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const traceSchema = `
CREATE TABLE IF NOT EXISTS positions (
	run_id TEXT NOT NULL,
	tick   INTEGER NOT NULL,
	body   INTEGER NOT NULL,
	x      REAL NOT NULL,
	y      REAL NOT NULL,
	PRIMARY KEY (run_id, tick, body)
)`

// TraceDB stores every body position of a run in a sqlite table. Attach it
// to a simulator with AddObserver.
type TraceDB struct {
	db    *sql.DB
	runID string
	err   error
}

func OpenTrace(path, runID string) (*TraceDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(traceSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create positions table: %w", err)
	}
	return &TraceDB{db: db, runID: runID}, nil
}

func (t *TraceDB) OnTick(bodies []dynamo.Body, tick int) {
	if t.err != nil {
		return
	}
	t.err = t.insert(bodies, tick)
}

func (t *TraceDB) insert(bodies []dynamo.Body, tick int) error {
	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO positions (run_id, tick, body, x, y) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, b := range bodies {
		if _, err := stmt.Exec(t.runID, tick, i, b.Position[0], b.Position[1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("tick %d body %d: %w", tick, i, err)
		}
	}
	return tx.Commit()
}

// Err reports the first write failure, if any.
func (t *TraceDB) Err() error { return t.err }

// Trace returns the positions of one body ordered by tick.
func (t *TraceDB) Trace(runID string, body int) ([]mgl64.Vec2, error) {
	rows, err := t.db.Query("SELECT x, y FROM positions WHERE run_id = ? AND body = ? ORDER BY tick", runID, body)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []mgl64.Vec2
	for rows.Next() {
		var p mgl64.Vec2
		if err := rows.Scan(&p[0], &p[1]); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (t *TraceDB) Runs() ([]string, error) {
	rows, err := t.db.Query("SELECT DISTINCT run_id FROM positions ORDER BY run_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (t *TraceDB) Close() error {
	return t.db.Close()
}
