package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zam-dot/portfolio/contact"
	_ "modernc.org/sqlite"
)

// StoredSubmission is a submission as kept in the database
type StoredSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps contact submissions in sqlite
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at dsn and makes sure the
// submissions table exists
func OpenStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	createSubmissions := `
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		subject TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(createSubmissions); err != nil {
		db.Close()
		return nil, fmt.Errorf("create submissions table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores sub and returns it with its id and timestamp
func (s *Store) Add(ctx context.Context, sub contact.Submission) (StoredSubmission, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (name, email, phone, subject, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, sub.Name, sub.Email, sub.Phone, sub.Subject, now)
	if err != nil {
		return StoredSubmission{}, fmt.Errorf("insert submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return StoredSubmission{}, fmt.Errorf("insert submission: %w", err)
	}
	return StoredSubmission{
		ID:        id,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		CreatedAt: now,
	}, nil
}

// List returns every stored submission, newest first
func (s *Store) List(ctx context.Context) ([]StoredSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, subject, created_at
		FROM submissions
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []StoredSubmission{}
	for rows.Next() {
		var sub StoredSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Subject, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}
