package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
)

// AppendFeedback records a human category correction. The log is
// append-only and consumed by the offline weight-tuning pass; it is never
// read during classification.
func (s *SQLiteStorage) AppendFeedback(ctx context.Context, entry model.FeedbackEntry) error {
	if entry.Fingerprint == "" {
		return fmt.Errorf("feedback fingerprint is required")
	}
	if !entry.Category.IsKnown() && entry.Category != model.CategoryUnknown {
		return fmt.Errorf("feedback category %q is not valid", entry.Category)
	}

	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (fingerprint, category, created_at) VALUES (?, ?, ?)`,
		entry.Fingerprint, string(entry.Category), timestamp)
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	return nil
}

// ListFeedback returns feedback entries recorded at or after the given time.
func (s *SQLiteStorage) ListFeedback(ctx context.Context, since time.Time) ([]model.FeedbackEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fingerprint, category, created_at FROM feedback
		 WHERE created_at >= ? ORDER BY created_at, id`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.FeedbackEntry
	for rows.Next() {
		var entry model.FeedbackEntry
		var category string
		if err := rows.Scan(&entry.Fingerprint, &category, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan feedback entry: %w", err)
		}
		entry.Category = model.ParseCategory(category)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}
	return entries, nil
}
