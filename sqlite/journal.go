package sqlite

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/awalczyk/cppref"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ cppref.FetchJournal = (*JournalService)(nil)

// JournalService implements cppref.FetchJournal using SQLite. One row per
// symbol; re-fetching a page replaces its row.
type JournalService struct {
	db *DB
}

// NewJournalService creates a new JournalService.
func NewJournalService(db *DB) *JournalService {
	return &JournalService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Record stores a row for a fetched page, replacing any previous row for
// the same name.
func (s *JournalService) Record(ctx context.Context, name, url, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetches (name, url, content_hash, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			url = excluded.url,
			content_hash = excluded.content_hash,
			bytes = excluded.bytes,
			fetched_at = excluded.fetched_at
	`, name, url, hashContent(content), len(content), time.Now().UTC().Format(time.RFC3339))

	return err
}

// List returns all recorded fetches, most recent first.
func (s *JournalService) List(ctx context.Context) ([]*cppref.FetchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, url, content_hash, bytes, fetched_at
		FROM fetches
		ORDER BY fetched_at DESC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*cppref.FetchRecord
	for rows.Next() {
		var rec cppref.FetchRecord
		var fetchedAt string

		if err := rows.Scan(&rec.Name, &rec.URL, &rec.ContentHash, &rec.Bytes, &fetchedAt); err != nil {
			return nil, err
		}

		rec.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}
