package authctl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	migrated   bool
	migrateErr error
	sweptAt    time.Time
	swept      int64
	passwords  map[string]string
	created    []string
}

func (f *fakeBackend) Migrate(ctx context.Context) error {
	f.migrated = true
	return f.migrateErr
}

func (f *fakeBackend) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	f.sweptAt = now
	return f.swept, nil
}

func (f *fakeBackend) SetPassword(ctx context.Context, email, password string) error {
	if email == "missing@example.com" {
		return common.ErrorNotFound
	}
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[email] = password
	return nil
}

func (f *fakeBackend) CreateUser(ctx context.Context, username, email, password, role string) (*models.User, error) {
	f.created = append(f.created, username+"|"+email+"|"+password+"|"+role)
	return &models.User{ID: "id-1", Username: username, Email: email, Role: role}, nil
}

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
}

func newTestApp(f *fakeBackend, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := NewApp(f, f, f, strings.NewReader(input), &out)
	a.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return a, &out
}

func TestRun_Usage(t *testing.T) {
	a, out := newTestApp(&fakeBackend{}, "")

	assert.ErrorIs(t, a.Run(context.Background(), nil), ErrUsage)
	assert.ErrorIs(t, a.Run(context.Background(), []string{"bogus"}), ErrUsage)
	assert.ErrorIs(t, a.Run(context.Background(), []string{"set-password"}), ErrUsage)
	assert.ErrorIs(t, a.Run(context.Background(), []string{"create-user", "only-name"}), ErrUsage)
	assert.ErrorIs(t, a.Run(context.Background(), []string{"sweep", "-f"}), ErrUsage)

	require.NoError(t, a.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "usage: authctl")
}

func TestRun_Migrate(t *testing.T) {
	f := &fakeBackend{}
	a, out := newTestApp(f, "")
	require.NoError(t, a.Run(context.Background(), []string{"migrate"}))
	assert.True(t, f.migrated)
	assert.Contains(t, out.String(), "migrations applied")

	f.migrateErr = errors.New("boom")
	assert.EqualError(t, a.Run(context.Background(), []string{"migrate"}), "boom")
}

func TestRun_Sweep(t *testing.T) {
	f := &fakeBackend{swept: 3}
	a, out := newTestApp(f, "")
	require.NoError(t, a.Run(context.Background(), []string{"sweep", "-y"}))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), f.sweptAt)
	assert.Contains(t, out.String(), "removed 3 refresh tokens")
}

func TestRun_SweepAsksForConfirmation(t *testing.T) {
	f := &fakeBackend{swept: 1}
	a, out := newTestApp(f, "n\n")
	require.NoError(t, a.Run(context.Background(), []string{"sweep"}))
	assert.True(t, f.sweptAt.IsZero())
	assert.Contains(t, out.String(), "aborted")

	a, _ = newTestApp(f, "yes\n")
	require.NoError(t, a.Run(context.Background(), []string{"sweep"}))
	assert.False(t, f.sweptAt.IsZero())
}

func TestRun_SetPassword(t *testing.T) {
	f := &fakeBackend{}
	a, out := newTestApp(f, "")

	stubPasswords(t, "new password", "new password")
	require.NoError(t, a.Run(context.Background(), []string{"set-password", "alice@example.com"}))
	assert.Equal(t, "new password", f.passwords["alice@example.com"])
	assert.NotContains(t, out.String(), "new password")

	stubPasswords(t, "one", "two")
	assert.Error(t, a.Run(context.Background(), []string{"set-password", "alice@example.com"}))

	stubPasswords(t, "pw123456", "pw123456")
	assert.ErrorIs(t, a.Run(context.Background(), []string{"set-password", "missing@example.com"}), common.ErrorNotFound)
}

func TestRun_CreateUser(t *testing.T) {
	f := &fakeBackend{}
	a, out := newTestApp(f, "")

	stubPasswords(t, "pw123456", "pw123456", "pw654321", "pw654321")
	require.NoError(t, a.Run(context.Background(), []string{"create-user", "root", "root@example.com", common.RoleAdmin}))
	require.NoError(t, a.Run(context.Background(), []string{"create-user", "bob", "bob@example.com"}))

	assert.Equal(t, []string{
		"root|root@example.com|pw123456|admin",
		"bob|bob@example.com|pw654321|user",
	}, f.created)
	assert.Contains(t, out.String(), "created admin user root")
}

func TestGetSimpleText(t *testing.T) {
	a, _ := newTestApp(&fakeBackend{}, "lastline")
	got, err := GetSimpleText(a.in, "Name?", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetPassword_Error(t *testing.T) {
	stubPasswords(t)
	_, err := GetPassword(&bytes.Buffer{}, "Password")
	assert.Error(t, err)
}
