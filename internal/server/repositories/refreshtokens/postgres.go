// Package refreshtokens provides a PostgreSQL-backed repository for managing
// refresh tokens used in the server's authentication flow.
package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

const columns = `id, jti, principal_id, client_id, token_hash, created_at, last_used_at, expires_at, revoked, replaced_by_jti, ip_address, user_agent`

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanToken(s scanner) (*models.RefreshToken, error) {
	t := &models.RefreshToken{}
	err := s.Scan(&t.ID, &t.JTI, &t.PrincipalID, &t.ClientID, &t.TokenHash, &t.CreatedAt,
		&t.LastUsedAt, &t.ExpiresAt, &t.Revoked, &t.ReplacedByJTI, &t.IPAddress, &t.UserAgent)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.JTI, t.PrincipalID, t.ClientID, t.TokenHash, t.CreatedAt,
		t.LastUsedAt, t.ExpiresAt, t.Revoked, t.ReplacedByJTI, t.IPAddress, t.UserAgent)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.RefreshToken, error) {
	t, err := scanToken(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	query := `
		SELECT ` + columns + `
		FROM refresh_tokens
		WHERE token_hash = $1
	`
	return r.findOne(ctx, query, tokenHash)
}

func (r *PostgresRepository) FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	query := `
		SELECT ` + columns + `
		FROM refresh_tokens
		WHERE token_hash = $1
		FOR UPDATE
	`
	return r.findOne(ctx, query, tokenHash)
}

func (r *PostgresRepository) FindByJTI(ctx context.Context, jti string) (*models.RefreshToken, error) {
	query := `
		SELECT ` + columns + `
		FROM refresh_tokens
		WHERE jti = $1
	`
	return r.findOne(ctx, query, jti)
}

func (r *PostgresRepository) MarkRotated(ctx context.Context, id, replacedByJTI string, usedAt time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE, replaced_by_jti = $2, last_used_at = $3
		WHERE id = $1 AND revoked = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, id, replacedByJTI, usedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrConflict
	}
	return nil
}

func (r *PostgresRepository) RevokeByJTI(ctx context.Context, jti string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE jti = $1
	`
	res, err := r.db.ExecContext(ctx, query, jti)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) RevokeAllForPrincipal(ctx context.Context, principalID string) (int64, error) {
	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE principal_id = $1 AND revoked = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, principalID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) collect(rows *sql.Rows) ([]*models.RefreshToken, error) {
	defer rows.Close()

	var out []*models.RefreshToken
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) ListActiveForPrincipal(ctx context.Context, principalID string, now time.Time) ([]*models.RefreshToken, error) {
	query := `
		SELECT ` + columns + `
		FROM refresh_tokens
		WHERE principal_id = $1 AND revoked = FALSE AND expires_at > $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, principalID, now)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.collect(rows)
}

func (r *PostgresRepository) DeleteSweepable(ctx context.Context, now, revokedBefore time.Time) ([]*models.RefreshToken, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE expires_at <= $1
		   OR (revoked = TRUE AND COALESCE(last_used_at, created_at) <= $2)
		RETURNING ` + columns
	rows, err := r.db.QueryContext(ctx, query, now, revokedBefore)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.collect(rows)
}
