package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var u1Claims = map[string]any{"role": common.RoleUser}

func TestIssue_StoresDigestOnly(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pair, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{ClientID: "web", IPAddress: "10.0.0.1", UserAgent: "ua"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEmpty(t, pair.JTI)
	assert.Equal(t, h.clock.Now().Add(h.cfg.RefreshTokenValidityDuration), pair.ExpiresAt)

	active, err := h.tokens.ListActive(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	rec := active[0]
	assert.Equal(t, h.hasher.Hash(pair.RefreshToken), rec.TokenHash)
	assert.NotEqual(t, pair.RefreshToken, rec.TokenHash)
	require.NotNil(t, rec.ClientID)
	assert.Equal(t, "web", *rec.ClientID)
	require.NotNil(t, rec.IPAddress)
	assert.Equal(t, "10.0.0.1", *rec.IPAddress)

	claims, err := h.codec.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, common.RoleUser, claims.Role)
}

func TestIssue_EmptyPrincipal(t *testing.T) {
	h := newHarness(t)
	_, err := h.tokens.Issue(context.Background(), "", nil, ClientInfo{})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRotate_ChainScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	t0, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)

	t1, err := h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{}, u1Claims)
	require.NoError(t, err)
	assert.NotEqual(t, t0.RefreshToken, t1.RefreshToken)
	assert.NotEmpty(t, t1.AccessToken)

	t2, err := h.tokens.Rotate(ctx, t1.RefreshToken, ClientInfo{}, u1Claims)
	require.NoError(t, err)
	assert.NotEqual(t, t1.JTI, t2.JTI)

	repo := h.manager.RefreshTokens(h.manager.Transactor().Conn())
	old, err := repo.FindByJTI(ctx, t0.JTI)
	require.NoError(t, err)
	assert.True(t, old.Revoked)
	require.NotNil(t, old.ReplacedByJTI)
	assert.Equal(t, t1.JTI, *old.ReplacedByJTI)
	require.NotNil(t, old.LastUsedAt)

	assert.Equal(t, 1, h.activeCount(t, "u1"))
}

func TestRotate_ReplayRevokesFamily(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	t0, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	other, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	_, err = h.tokens.Issue(ctx, "u2", u1Claims, ClientInfo{})
	require.NoError(t, err)

	t1, err := h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{}, u1Claims)
	require.NoError(t, err)

	_, err = h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{}, u1Claims)
	require.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)

	assert.Equal(t, 0, h.activeCount(t, "u1"))
	assert.Equal(t, 1, h.activeCount(t, "u2"))

	_, err = h.tokens.Rotate(ctx, t1.RefreshToken, ClientInfo{}, u1Claims)
	assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)
	_, err = h.tokens.Rotate(ctx, other.RefreshToken, ClientInfo{}, u1Claims)
	assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)

	assert.Contains(t, h.events.events, events.TypeSessionReuseDetected)
}

func TestRotate_ExpiredTokenRevokesFamily(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	stale, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	h.clock.Advance(h.cfg.RefreshTokenValidityDuration - time.Hour)
	fresh, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	h.clock.Advance(time.Hour)

	_, err = h.tokens.Rotate(ctx, stale.RefreshToken, ClientInfo{}, u1Claims)
	require.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)

	_, err = h.tokens.Rotate(ctx, fresh.RefreshToken, ClientInfo{}, u1Claims)
	assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)
}

func TestRotate_UnknownToken(t *testing.T) {
	h := newHarness(t)
	_, err := h.tokens.Rotate(context.Background(), "nope", ClientInfo{}, nil)
	assert.ErrorIs(t, err, common.ErrTokenNotFound)

	_, err = h.tokens.Rotate(context.Background(), "", ClientInfo{}, nil)
	assert.ErrorIs(t, err, common.ErrTokenNotFound)
}

func TestRotate_ClientMismatchLeavesTokenUsable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	t0, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{ClientID: "web"})
	require.NoError(t, err)

	_, err = h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{ClientID: "mobile"}, u1Claims)
	require.ErrorIs(t, err, common.ErrClientMismatch)
	assert.Equal(t, 1, h.activeCount(t, "u1"))

	t1, err := h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{ClientID: "web"}, u1Claims)
	require.NoError(t, err)

	active, err := h.tokens.ListActive(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, t1.JTI, active[0].JTI)
	require.NotNil(t, active[0].ClientID)
	assert.Equal(t, "web", *active[0].ClientID)
}

func TestRotate_UntaggedTokenRejectsClientID(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	t0, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	_, err = h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{ClientID: "web"}, u1Claims)
	assert.ErrorIs(t, err, common.ErrClientMismatch)
}

func TestRotate_ConcurrentPresentationsExactlyOneWins(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	t0, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		reused  int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := h.tokens.Rotate(ctx, t0.RefreshToken, ClientInfo{}, u1Claims)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, common.ErrTokenExpiredOrRevoked):
				reused++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, n-1, reused)
	assert.Equal(t, 0, h.activeCount(t, "u1"))
}

func TestRotate_ResolvesClaimsFromUserStore(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, pair, err := h.users.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)

	next, err := h.tokens.Rotate(ctx, pair.RefreshToken, ClientInfo{}, nil)
	require.NoError(t, err)

	claims, err := h.codec.Verify(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, common.RoleUser, claims.Role)
}

func TestRevokeAllForPrincipal_ThenRotateFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	b, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)

	n, err := h.tokens.RevokeAllForPrincipal(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = h.tokens.RevokeAllForPrincipal(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, raw := range []string{a.RefreshToken, b.RefreshToken} {
		_, err := h.tokens.Rotate(ctx, raw, ClientInfo{}, u1Claims)
		assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)
	}
}

func TestRevokeByJTI(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pair, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)

	require.NoError(t, h.tokens.RevokeByJTI(ctx, pair.JTI))
	assert.Equal(t, 0, h.activeCount(t, "u1"))

	assert.ErrorIs(t, h.tokens.RevokeByJTI(ctx, "not-a-uuid"), common.ErrTokenNotFound)
	assert.ErrorIs(t, h.tokens.RevokeByJTI(ctx, "9b2f7f0e-3f5c-4d0a-9d6e-0f1e2d3c4b5a"), common.ErrTokenNotFound)
}

func TestSweepExpired_ArchivesAndDeletes(t *testing.T) {
	arch := &recordingArchiver{}
	h := newHarness(t, WithArchiver(arch))
	ctx := context.Background()

	expiring, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	h.clock.Advance(h.cfg.RefreshTokenValidityDuration)

	live, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	rotated, err := h.tokens.Rotate(ctx, live.RefreshToken, ClientInfo{}, u1Claims)
	require.NoError(t, err)

	n, err := h.tokens.SweepExpired(ctx, h.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "rotated row is inside the grace window")
	require.Len(t, arch.batches, 1)
	assert.Equal(t, expiring.JTI, arch.batches[0][0].JTI)

	h.clock.Advance(h.cfg.SweepGrace)
	n, err = h.tokens.SweepExpired(ctx, h.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := h.tokens.ListActive(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, rotated.JTI, active[0].JTI)
}

func TestSweepExpired_ArchiveFailureKeepsRows(t *testing.T) {
	arch := &recordingArchiver{err: errors.New("s3 down")}
	h := newHarness(t, WithArchiver(arch))
	ctx := context.Background()

	pair, err := h.tokens.Issue(ctx, "u1", u1Claims, ClientInfo{})
	require.NoError(t, err)
	h.clock.Advance(h.cfg.RefreshTokenValidityDuration)

	_, err = h.tokens.SweepExpired(ctx, h.clock.Now())
	require.ErrorIs(t, err, arch.err)

	_, err = h.manager.RefreshTokens(h.manager.Transactor().Conn()).FindByJTI(ctx, pair.JTI)
	assert.NoError(t, err)
}
