package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// RefreshTokens implements refreshtokens.Repository.
type RefreshTokens struct {
	s  *Store
	db dbx.DBTX
}

func (r *RefreshTokens) Create(ctx context.Context, t *models.RefreshToken) error {
	defer r.s.lock(r.db)()

	for _, existing := range r.s.refresh {
		if existing.ID == t.ID || existing.JTI == t.JTI || existing.TokenHash == t.TokenHash {
			return common.ErrorAlreadyExists
		}
	}
	r.s.refresh[t.ID] = copyRefresh(t)
	return nil
}

func (r *RefreshTokens) find(match func(*models.RefreshToken) bool) (*models.RefreshToken, error) {
	for _, t := range r.s.refresh {
		if match(t) {
			return copyRefresh(t), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *RefreshTokens) FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	defer r.s.lock(r.db)()
	return r.find(func(t *models.RefreshToken) bool { return t.TokenHash == tokenHash })
}

// FindByHashForUpdate needs no extra locking: transactions are exclusive.
func (r *RefreshTokens) FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	return r.FindByHash(ctx, tokenHash)
}

func (r *RefreshTokens) FindByJTI(ctx context.Context, jti string) (*models.RefreshToken, error) {
	defer r.s.lock(r.db)()
	return r.find(func(t *models.RefreshToken) bool { return t.JTI == jti })
}

func (r *RefreshTokens) MarkRotated(ctx context.Context, id, replacedByJTI string, usedAt time.Time) error {
	defer r.s.lock(r.db)()

	t, ok := r.s.refresh[id]
	if !ok || t.Revoked {
		return common.ErrConflict
	}
	t.Revoked = true
	t.ReplacedByJTI = &replacedByJTI
	t.LastUsedAt = &usedAt
	return nil
}

func (r *RefreshTokens) RevokeByJTI(ctx context.Context, jti string) error {
	defer r.s.lock(r.db)()

	for _, t := range r.s.refresh {
		if t.JTI == jti {
			t.Revoked = true
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *RefreshTokens) RevokeAllForPrincipal(ctx context.Context, principalID string) (int64, error) {
	defer r.s.lock(r.db)()

	var n int64
	for _, t := range r.s.refresh {
		if t.PrincipalID == principalID && !t.Revoked {
			t.Revoked = true
			n++
		}
	}
	return n, nil
}

func (r *RefreshTokens) ListActiveForPrincipal(ctx context.Context, principalID string, now time.Time) ([]*models.RefreshToken, error) {
	defer r.s.lock(r.db)()

	var out []*models.RefreshToken
	for _, t := range r.s.refresh {
		if t.PrincipalID == principalID && t.Active(now) {
			out = append(out, copyRefresh(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *RefreshTokens) DeleteSweepable(ctx context.Context, now, revokedBefore time.Time) ([]*models.RefreshToken, error) {
	defer r.s.lock(r.db)()

	var out []*models.RefreshToken
	for id, t := range r.s.refresh {
		touched := t.CreatedAt
		if t.LastUsedAt != nil {
			touched = *t.LastUsedAt
		}
		if !t.ExpiresAt.After(now) || (t.Revoked && !touched.After(revokedBefore)) {
			out = append(out, t)
			delete(r.s.refresh, id)
		}
	}
	return out, nil
}
