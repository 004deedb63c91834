package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/techskyline/academy/internal/credential"
)

// CertificateRepo persists issued certificates keyed by id. It implements
// credential.Repo. Rows are insert-only; certificates are never updated or
// deleted.
type CertificateRepo struct {
	db *sql.DB
}

// Insert stores a new certificate. A primary-key conflict surfaces as
// credential.ErrDuplicateID so the issuer can re-roll the id.
func (r *CertificateRepo) Insert(ctx context.Context, cert credential.Certificate) error {
	doc, err := json.Marshal(cert)
	if err != nil {
		return fmt.Errorf("encode certificate: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO certificates (id, document, issued_at) VALUES (?, ?, ?)`,
		cert.ID, string(doc), cert.IssuedAt.UTC().UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return credential.ErrDuplicateID
		}
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

// Get returns the certificate with the given id, or credential.ErrNotFound.
func (r *CertificateRepo) Get(ctx context.Context, id string) (credential.Certificate, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM certificates WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return credential.Certificate{}, credential.ErrNotFound
	}
	if err != nil {
		return credential.Certificate{}, fmt.Errorf("read certificate: %w", err)
	}

	var cert credential.Certificate
	if err := json.Unmarshal([]byte(doc), &cert); err != nil {
		return credential.Certificate{}, fmt.Errorf("decode certificate %s: %w", id, err)
	}
	return cert, nil
}

// List returns all certificates, newest first.
func (r *CertificateRepo) List(ctx context.Context) ([]credential.Certificate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT document FROM certificates ORDER BY issued_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var certs []credential.Certificate
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		var cert credential.Certificate
		if err := json.Unmarshal([]byte(doc), &cert); err != nil {
			return nil, fmt.Errorf("decode certificate: %w", err)
		}
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

var _ credential.Repo = (*CertificateRepo)(nil)
