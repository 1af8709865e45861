package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Event represents a journaled gesture event stored in the database.
type Event struct {
	ID        string
	Type      string
	Status    string
	Detail    json.RawMessage
	CreatedAt time.Time
}

// EventRepository provides append and query operations for the event journal.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append inserts a new event into the journal.
// A missing ID is filled with a fresh UUID.
func (r *EventRepository) Append(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now()

	detail := e.Detail
	if detail == nil {
		detail = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, type, status, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Type, e.Status, string(detail), e.CreatedAt,
	)
	return err
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(id string) (*Event, error) {
	e := &Event{}
	var detail string

	err := r.db.QueryRow(
		`SELECT id, type, status, detail, created_at
		 FROM events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Type, &e.Status, &detail, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e.Detail = json.RawMessage(detail)
	return e, nil
}

// List retrieves the newest events from the journal, newest first.
// A limit <= 0 returns all events.
func (r *EventRepository) List(limit int) ([]*Event, error) {
	query := `SELECT id, type, status, detail, created_at
		 FROM events ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var detail string

		err := rows.Scan(&e.ID, &e.Type, &e.Status, &detail, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Detail = json.RawMessage(detail)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListByType retrieves the newest events of a given type, newest first.
func (r *EventRepository) ListByType(eventType string, limit int) ([]*Event, error) {
	query := `SELECT id, type, status, detail, created_at
		 FROM events WHERE type = ? ORDER BY created_at DESC`
	args := []any{eventType}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var detail string

		err := rows.Scan(&e.ID, &e.Type, &e.Status, &detail, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Detail = json.RawMessage(detail)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Count returns the total number of journaled events.
func (r *EventRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Prune deletes all but the newest keep events and reports how many were removed.
func (r *EventRepository) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := r.db.Exec(
		`DELETE FROM events WHERE id NOT IN (
			SELECT id FROM events ORDER BY created_at DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
