package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(id, jti, hash, principal string, created, expires time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID: id, JTI: jti, TokenHash: hash, PrincipalID: principal,
		CreatedAt: created, ExpiresAt: expires,
	}
}

func TestWithinTx_RollbackRestoresState(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, m.RefreshTokens(m.Transactor().Conn()).Create(ctx, token("1", "j1", "h1", "u1", now, now.Add(time.Hour))))

	boom := errors.New("boom")
	err := m.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.RefreshTokens(tx)
		if _, err := repo.RevokeAllForPrincipal(ctx, "u1"); err != nil {
			return err
		}
		if err := repo.Create(ctx, token("2", "j2", "h2", "u1", now, now.Add(time.Hour))); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	repo := m.RefreshTokens(m.Transactor().Conn())
	got, err := repo.FindByJTI(ctx, "j1")
	require.NoError(t, err)
	assert.False(t, got.Revoked)

	_, err = repo.FindByJTI(ctx, "j2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWithinTx_PanicRollsBackAndRethrows(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = m.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			_, _ = m.Users(tx).Create(ctx, &models.User{ID: "u1", Email: "a@b.c"})
			panic("boom")
		})
	})

	_, err := m.Users(m.Transactor().Conn()).GetByID(ctx, "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWithinTx_CanceledContext(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMarkRotated_SecondCallConflicts(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := m.RefreshTokens(m.Transactor().Conn())

	require.NoError(t, repo.Create(ctx, token("1", "j1", "h1", "u1", now, now.Add(time.Hour))))
	require.NoError(t, repo.MarkRotated(ctx, "1", "j2", now))
	assert.ErrorIs(t, repo.MarkRotated(ctx, "1", "j3", now), common.ErrConflict)

	got, err := repo.FindByHash(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, got.ReplacedByJTI)
	assert.Equal(t, "j2", *got.ReplacedByJTI)
}

func TestWithinTx_IsExclusive(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.RefreshTokens(m.Transactor().Conn()).Create(ctx, token("1", "j1", "h1", "u1", now, now.Add(time.Hour))))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		conflict int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
				repo := m.RefreshTokens(tx)
				rec, err := repo.FindByHashForUpdate(ctx, "h1")
				if err != nil {
					return err
				}
				if rec.Revoked {
					return common.ErrConflict
				}
				return repo.MarkRotated(ctx, rec.ID, "next", now)
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners++
			} else if errors.Is(err, common.ErrConflict) {
				conflict++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, 7, conflict)
}

func TestDeleteSweepable(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	repo := m.RefreshTokens(m.Transactor().Conn())

	require.NoError(t, repo.Create(ctx, token("expired", "j1", "h1", "u1", now.Add(-48*time.Hour), now.Add(-time.Second))))
	require.NoError(t, repo.Create(ctx, token("active", "j2", "h2", "u1", now, now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, token("old-revoked", "j3", "h3", "u1", now.Add(-72*time.Hour), now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, token("fresh-revoked", "j4", "h4", "u1", now.Add(-time.Hour), now.Add(time.Hour))))
	require.NoError(t, repo.RevokeByJTI(ctx, "j3"))
	require.NoError(t, repo.RevokeByJTI(ctx, "j4"))

	removed, err := repo.DeleteSweepable(ctx, now, now.Add(-24*time.Hour))
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, r := range removed {
		ids[r.ID] = true
	}
	assert.Equal(t, map[string]bool{"expired": true, "old-revoked": true}, ids)

	active, err := repo.ListActiveForPrincipal(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "active", active[0].ID)
}

func TestUsers_EmailUniqueCaseInsensitive(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	repo := m.Users(m.Transactor().Conn())

	_, err := repo.Create(ctx, &models.User{ID: "1", Email: "Alice@Example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{ID: "2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	require.NoError(t, repo.UpdatePasswordHash(ctx, "1", []byte("h")))
	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, "missing", []byte("h")), common.ErrorNotFound)
}

func TestResetTokens_MarkUsedOnce(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	repo := m.ResetTokens(m.Transactor().Conn())

	require.NoError(t, repo.Create(ctx, &models.PasswordReset{ID: "r1", UserID: "u1", TokenHash: "h"}))
	got, err := repo.FindByHashForUpdate(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, repo.MarkUsed(ctx, "r1"))
	assert.ErrorIs(t, repo.MarkUsed(ctx, "r1"), common.ErrConflict)
}
