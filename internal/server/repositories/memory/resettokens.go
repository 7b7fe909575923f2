package memory

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// ResetTokens implements resettokens.Repository.
type ResetTokens struct {
	s  *Store
	db dbx.DBTX
}

func (r *ResetTokens) Create(ctx context.Context, p *models.PasswordReset) error {
	defer r.s.lock(r.db)()

	for _, existing := range r.s.resets {
		if existing.ID == p.ID || existing.TokenHash == p.TokenHash {
			return common.ErrorAlreadyExists
		}
	}
	r.s.resets[p.ID] = copyReset(p)
	return nil
}

func (r *ResetTokens) FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	defer r.s.lock(r.db)()

	for _, p := range r.s.resets {
		if p.TokenHash == tokenHash {
			return copyReset(p), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *ResetTokens) MarkUsed(ctx context.Context, id string) error {
	defer r.s.lock(r.db)()

	p, ok := r.s.resets[id]
	if !ok || p.Used {
		return common.ErrConflict
	}
	p.Used = true
	return nil
}
