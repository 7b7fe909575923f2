package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, h *harness) string {
	t.Helper()
	u, _, err := h.users.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "Alice@Example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	return u.ID
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, pair, err := h.users.Register(ctx, RegisterInput{Username: "alice", Email: " Alice@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, common.RoleUser, u.Role)
	assert.NotEqual(t, []byte("correct horse"), u.PasswordHash)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Contains(t, h.events.events, events.TypeUserRegistered)

	_, _, err = h.users.Register(ctx, RegisterInput{Username: "alice2", Email: "alice@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	h := newHarness(t)
	cases := []RegisterInput{
		{Username: "", Email: "a@b.c", Password: "long enough"},
		{Username: "a", Email: "not-an-email", Password: "long enough"},
		{Username: "a", Email: "a@b.c", Password: "short"},
	}
	for _, in := range cases {
		_, _, err := h.users.Register(context.Background(), in)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", in)
	}
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := register(t, h)

	u, pair, err := h.users.Login(ctx, "ALICE@example.com", "correct horse", ClientInfo{ClientID: "web"})
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	claims, err := h.codec.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Subject)
	assert.Equal(t, "alice", claims.Username)

	_, _, err = h.users.Login(ctx, "alice@example.com", "wrong password", ClientInfo{})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, _, err = h.users.Login(ctx, "nobody@example.com", "correct horse", ClientInfo{})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := register(t, h)

	_, second, err := h.users.Login(ctx, "alice@example.com", "correct horse", ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.activeCount(t, id))

	next, err := h.users.Refresh(ctx, second.RefreshToken, ClientInfo{})
	require.NoError(t, err)

	require.NoError(t, h.users.Logout(ctx, next.JTI, nil))
	assert.Equal(t, 1, h.activeCount(t, id))

	require.NoError(t, h.users.Logout(ctx, "", nil))
	assert.Equal(t, 1, h.activeCount(t, id))

	require.NoError(t, h.users.Logout(ctx, "", &auth.Principal{ID: id}))
	assert.Equal(t, 0, h.activeCount(t, id))
}

func TestSessionsAndMe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := register(t, h)

	sessions, err := h.users.Sessions(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	me, err := h.users.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	n, err := h.users.RevokeAll(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPasswordResetFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := register(t, h)

	require.NoError(t, h.users.StartPasswordReset(ctx, "alice@example.com"))
	require.Len(t, h.events.mails, 1)
	mail := h.events.mails[0]
	assert.Equal(t, "alice@example.com", mail.To)

	i := strings.Index(mail.Body, h.cfg.PasswordResetURL+"?token=")
	require.GreaterOrEqual(t, i, 0)
	link := strings.TrimSpace(mail.Body[i:])
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	raw := parsed.Query().Get("token")
	require.NotEmpty(t, raw)

	require.NoError(t, h.users.CompletePasswordReset(ctx, raw, "battery staple"))
	assert.Equal(t, 0, h.activeCount(t, id), "reset revokes existing sessions")
	assert.Contains(t, h.events.events, events.TypePasswordResetCompleted)

	_, _, err = h.users.Login(ctx, "alice@example.com", "correct horse", ClientInfo{})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, _, err = h.users.Login(ctx, "alice@example.com", "battery staple", ClientInfo{})
	require.NoError(t, err)

	err = h.users.CompletePasswordReset(ctx, raw, "another password")
	assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)
}

func TestStartPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.users.StartPasswordReset(context.Background(), "ghost@example.com"))
	assert.Empty(t, h.events.mails)
}

func TestCompletePasswordReset_WeakPasswordKeepsToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := register(t, h)

	raw, err := h.resets.Initiate(ctx, id)
	require.NoError(t, err)

	assert.ErrorIs(t, h.users.CompletePasswordReset(ctx, raw, "short"), common.ErrorValidation)
	assert.NoError(t, h.users.CompletePasswordReset(ctx, raw, "long enough now"))
}

func TestCreateUserAndSetPassword(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, err := h.users.CreateUser(ctx, "root", "root@example.com", "admin password", common.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, u.Role)

	_, err = h.users.CreateUser(ctx, "x", "x@example.com", "password1", "superuser")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, first, err := h.users.Login(ctx, "root@example.com", "admin password", ClientInfo{})
	require.NoError(t, err)
	_, _, err = h.users.Login(ctx, "root@example.com", "admin password", ClientInfo{})
	require.NoError(t, err)
	require.Equal(t, 2, h.activeCount(t, u.ID))

	require.NoError(t, h.users.SetPassword(ctx, "root@example.com", "new admin password"))
	assert.Equal(t, 0, h.activeCount(t, u.ID))

	_, err = h.users.Refresh(ctx, first.RefreshToken, ClientInfo{})
	assert.ErrorIs(t, err, common.ErrTokenExpiredOrRevoked)

	_, _, err = h.users.Login(ctx, "root@example.com", "admin password", ClientInfo{})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, _, err = h.users.Login(ctx, "root@example.com", "new admin password", ClientInfo{})
	assert.NoError(t, err)

	assert.ErrorIs(t, h.users.SetPassword(ctx, "ghost@example.com", "whatever123"), common.ErrorNotFound)
}
