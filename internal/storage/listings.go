package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/common"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/normalize"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/signal"
)

// UpsertListing inserts or updates a catalog-index row. The fingerprint is
// derived from the listing when absent.
func (s *SQLiteStorage) UpsertListing(ctx context.Context, listing *service.StoredListing) error {
	if listing == nil {
		return fmt.Errorf("listing is required")
	}
	if listing.ID == "" {
		return fmt.Errorf("listing ID is required")
	}

	fingerprint := listing.Fingerprint
	if fingerprint == "" {
		fingerprint = model.Listing{Name: listing.Name, Vendor: listing.Vendor}.Fingerprint()
	}

	category := listing.Category
	if category == "" {
		category = model.CategoryUnknown
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (id, fingerprint, name, description, vendor, category, confidence, method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			name = excluded.name,
			description = excluded.description,
			vendor = excluded.vendor,
			category = excluded.category,
			confidence = excluded.confidence,
			method = excluded.method,
			updated_at = CURRENT_TIMESTAMP`,
		listing.ID, fingerprint, listing.Name, listing.Description,
		listing.Vendor, string(category), listing.Confidence, string(listing.Method))
	if err != nil {
		return fmt.Errorf("failed to upsert listing %s: %w", listing.ID, err)
	}
	return nil
}

// GetListing fetches one catalog-index row by ID.
func (s *SQLiteStorage) GetListing(ctx context.Context, id string) (*service.StoredListing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, name, description, vendor, category, confidence, method
		FROM listings WHERE id = ?`, id)

	listing, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

// ListListings returns catalog-index rows matching the filter, oldest first
// so resort runs are reproducible.
func (s *SQLiteStorage) ListListings(ctx context.Context, filter service.ListingFilter) ([]service.StoredListing, error) {
	query := `SELECT id, fingerprint, name, description, vendor, category, confidence, method FROM listings`
	var conditions []string
	var args []any

	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Vendor != "" {
		conditions = append(conditions, "vendor = ?")
		args = append(args, filter.Vendor)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listings []service.StoredListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}
	return listings, nil
}

// UpdateClassification records a fresh classification for a listing.
func (s *SQLiteStorage) UpdateClassification(ctx context.Context, id string, result model.ClassificationResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("invalid classification result: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE listings
		SET category = ?, confidence = ?, method = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		string(result.Category), result.Confidence, string(result.Method), id)
	if err != nil {
		return fmt.Errorf("failed to update classification for %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update for %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CatalogEntries returns the catalog as duplicate-matching fingerprints.
// Numeric specs are re-derived from the stored text; the extraction is pure
// so the entries track the rows exactly.
func (s *SQLiteStorage) CatalogEntries(ctx context.Context) ([]model.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, category FROM listings ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.CatalogEntry
	for rows.Next() {
		var id, name, description, category string
		if err := rows.Scan(&id, &name, &description, &category); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, model.CatalogEntry{
			ID:       id,
			Name:     name,
			Category: model.ParseCategory(category),
			Specs:    signal.ExtractNumericSpecs(normalize.Listing(name, description).Text),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog entries: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*service.StoredListing, error) {
	var listing service.StoredListing
	var category, method string
	if err := row.Scan(&listing.ID, &listing.Fingerprint, &listing.Name,
		&listing.Description, &listing.Vendor, &category, &listing.Confidence, &method); err != nil {
		return nil, err
	}
	listing.Category = model.ParseCategory(category)
	listing.Method = model.Method(method)
	return &listing, nil
}
