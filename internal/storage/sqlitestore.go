package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/andy/clienthub/internal/db"
	"github.com/andy/clienthub/internal/domain"
)

// SQLiteStore persists the registry in an encrypted SQLite database, one row
// per client with the registry position kept so insertion order survives a
// restart. The encryption key comes from the system keyring (see
// internal/crypto and the app bootstrap).
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a store over an opened, migrated database.
func NewSQLiteStore(database *db.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

// Load reads every client row in registry order. Any invalid row fails the
// whole load so the caller can fall back to an empty registry.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT name, phone, email, address, tags, pref_label, pref_frequency, description, priority
		FROM clients
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec       Record
			tagsJSON  string
			prefLabel sql.NullString
			prefFreq  sql.NullInt64
			desc      sql.NullString
			priority  sql.NullInt64
		)
		if err := rows.Scan(&rec.Name, &rec.Phone, &rec.Email, &rec.Address,
			&tagsJSON, &prefLabel, &prefFreq, &desc, &priority); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil {
			return nil, fmt.Errorf("failed to parse tags column: %w", err)
		}
		if prefLabel.Valid {
			rec.ProductPreference = &PreferenceRecord{
				Label:     prefLabel.String,
				Frequency: int(prefFreq.Int64),
			}
		}
		if desc.Valid {
			d := desc.String
			rec.Description = &d
		}
		if priority.Valid {
			p := int(priority.Int64)
			rec.Priority = &p
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	clients, err := decodeAll(records)
	if err != nil {
		return nil, fmt.Errorf("database contains an invalid record: %w", err)
	}
	return clients, nil
}

// Save replaces the whole table with the given clients in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, clients []domain.Client) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM clients"); err != nil {
		return fmt.Errorf("failed to clear clients: %w", err)
	}

	insert := `
		INSERT INTO clients (position, name, phone, email, address, tags, pref_label, pref_frequency, description, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, rec := range encodeAll(clients) {
		tagsJSON, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}

		var (
			prefLabel sql.NullString
			prefFreq  sql.NullInt64
			desc      sql.NullString
			priority  sql.NullInt64
		)
		if rec.ProductPreference != nil {
			prefLabel = sql.NullString{String: rec.ProductPreference.Label, Valid: true}
			prefFreq = sql.NullInt64{Int64: int64(rec.ProductPreference.Frequency), Valid: true}
		}
		if rec.Description != nil {
			desc = sql.NullString{String: *rec.Description, Valid: true}
		}
		if rec.Priority != nil {
			priority = sql.NullInt64{Int64: int64(*rec.Priority), Valid: true}
		}

		if _, err := tx.ExecContext(ctx, insert, i, rec.Name, rec.Phone, rec.Email, rec.Address,
			string(tagsJSON), prefLabel, prefFreq, desc, priority); err != nil {
			return fmt.Errorf("failed to insert client %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clients: %w", err)
	}
	return nil
}
