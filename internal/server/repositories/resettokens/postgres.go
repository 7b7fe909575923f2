package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.PasswordReset) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token_hash, used, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.TokenHash, p.Used, p.ExpiresAt, p.CreatedAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	query := `
		SELECT id, user_id, token_hash, used, expires_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1
		FOR UPDATE
	`
	p := &models.PasswordReset{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).
		Scan(&p.ID, &p.UserID, &p.TokenHash, &p.Used, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) error {
	query := `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE id = $1 AND used = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, id)
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
