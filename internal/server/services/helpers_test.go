package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophauth/internal/server/secrets"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	mails  []events.Mail
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) SendMail(ctx context.Context, m events.Mail) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mails = append(p.mails, m)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type recordingArchiver struct {
	batches [][]*models.RefreshToken
	err     error
}

func (a *recordingArchiver) Archive(ctx context.Context, records []*models.RefreshToken) error {
	if a.err != nil {
		return a.err
	}
	a.batches = append(a.batches, records)
	return nil
}

type harness struct {
	manager *memory.Manager
	clock   *fakeClock
	codec   *auth.Codec
	hasher  *secrets.Hasher
	events  *recordingPublisher
	tokens  *TokenService
	resets  *PasswordResetService
	users   *UserService
	cfg     *config.Config
}

func newHarness(t *testing.T, opts ...TokenOption) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PasswordResetURL = "https://app.example/reset"

	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	hasher, err := secrets.NewHasher(secrets.WithPepper("pepper"))
	require.NoError(t, err)
	codec, err := auth.NewCodec([]byte("test-key"), clock.Now)
	require.NoError(t, err)

	m := memory.NewManager()
	pub := &recordingPublisher{}
	base := []TokenOption{WithClock(clock.Now), WithClaimsResolver(UserClaims(m)), WithEvents(pub)}
	tokens := NewTokenService(m, hasher, codec, cfg, append(base, opts...)...)
	resets := NewPasswordResetService(m, hasher, cfg.PasswordResetValidity, clock.Now)
	users := NewUserService(m, tokens, resets, pub, logging.Nop{}, cfg)
	users.now = clock.Now

	return &harness{
		manager: m, clock: clock, codec: codec, hasher: hasher, events: pub,
		tokens: tokens, resets: resets, users: users, cfg: cfg,
	}
}

func (h *harness) activeCount(t *testing.T, principalID string) int {
	t.Helper()
	active, err := h.tokens.ListActive(context.Background(), principalID)
	require.NoError(t, err)
	return len(active)
}
