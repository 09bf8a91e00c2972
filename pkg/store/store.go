package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"kumoov/pkg/schedule"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("schedule item not found")

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	course_id   TEXT NOT NULL,
	name        TEXT NOT NULL DEFAULT '',
	day_of_week TEXT NOT NULL,
	start_time  TEXT NOT NULL,
	end_time    TEXT NOT NULL
)`

// Store keeps schedule items in a local SQLite database
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and makes sure the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY between statements.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every item in insertion order. Grouping is left to schedule.Group.
func (s *Store) List(ctx context.Context) ([]schedule.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, course_id, name, day_of_week, start_time, end_time FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []schedule.Item
	for rows.Next() {
		var it schedule.Item
		var day string
		if err := rows.Scan(&it.ID, &it.CourseID, &it.Name, &day, &it.StartTime, &it.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		it.DayOfWeek = schedule.Weekday(day)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Get returns the item with the given id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (schedule.Item, error) {
	var it schedule.Item
	var day string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, course_id, name, day_of_week, start_time, end_time FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.CourseID, &it.Name, &day, &it.StartTime, &it.EndTime)
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.Item{}, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return schedule.Item{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	it.DayOfWeek = schedule.Weekday(day)
	return it, nil
}

// Insert stores a new item and returns its id. The ID field of it is ignored.
func (s *Store) Insert(ctx context.Context, it schedule.Item) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO items (course_id, name, day_of_week, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
		it.CourseID, it.Name, string(it.DayOfWeek), it.StartTime, it.EndTime)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// InsertAll stores items in a single transaction and returns their new ids.
func (s *Store) InsertAll(ctx context.Context, items []schedule.Item) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (course_id, name, day_of_week, start_time, end_time) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		res, err := stmt.ExecContext(ctx, it.CourseID, it.Name, string(it.DayOfWeek), it.StartTime, it.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to insert item %s: %w", it.CourseID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read inserted id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return ids, nil
}

// Update overwrites the item with it.ID.
func (s *Store) Update(ctx context.Context, it schedule.Item) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE items SET course_id = ?, name = ?, day_of_week = ?, start_time = ?, end_time = ? WHERE id = ?`,
		it.CourseID, it.Name, string(it.DayOfWeek), it.StartTime, it.EndTime, it.ID)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", it.ID, err)
	}
	return checkAffected(res, it.ID)
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return nil
}
