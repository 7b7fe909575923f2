// Package services contains server-side business logic: the refresh token
// lifecycle, single-use password resets and the user-facing auth flows that
// combine them.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/secrets"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/google/uuid"
)

// ClientInfo describes the request presenting or receiving a refresh token.
// Empty fields are stored as NULL.
type ClientInfo struct {
	ClientID  string
	IPAddress string
	UserAgent string
}

// ClaimsResolver returns access token claims for principalID. It runs inside
// the caller's transaction.
type ClaimsResolver func(ctx context.Context, tx dbx.DBTX, principalID string) (map[string]any, error)

// Archiver receives refresh token rows before their deletion commits.
type Archiver interface {
	Archive(ctx context.Context, records []*models.RefreshToken) error
}

// TokenService owns refresh token issuance, rotation, revocation and cleanup.
type TokenService struct {
	repomanager repomanager.RepositoryManager
	hasher      *secrets.Hasher
	codec       *auth.Codec
	now         timex.Clock
	resolver    ClaimsResolver
	archiver    Archiver
	events      events.Publisher
	log         logging.Logger

	accessTTL  time.Duration
	refreshTTL time.Duration
	tokenBytes int
	sweepGrace time.Duration
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

func WithClock(now timex.Clock) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func WithClaimsResolver(r ClaimsResolver) TokenOption {
	return func(s *TokenService) { s.resolver = r }
}

// WithArchiver sets where swept rows are copied before deletion.
func WithArchiver(a Archiver) TokenOption {
	return func(s *TokenService) { s.archiver = a }
}

func WithEvents(p events.Publisher) TokenOption {
	return func(s *TokenService) { s.events = p }
}

func WithLogger(l logging.Logger) TokenOption {
	return func(s *TokenService) { s.log = l }
}

// NewTokenService builds a TokenService from server config.
func NewTokenService(m repomanager.RepositoryManager, hasher *secrets.Hasher, codec *auth.Codec, cfg *config.Config, opts ...TokenOption) *TokenService {
	s := &TokenService{
		repomanager: m,
		hasher:      hasher,
		codec:       codec,
		now:         timex.Now,
		events:      events.Nop{},
		log:         logging.Nop{},
		accessTTL:   cfg.AccessTokenValidityDuration,
		refreshTTL:  cfg.RefreshTokenValidityDuration,
		tokenBytes:  cfg.RefreshTokenBytes,
		sweepGrace:  cfg.SweepGrace,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("module", "tokens")
	return s
}

// AccessTTL is the lifetime of access tokens minted by the service.
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL is the lifetime of refresh tokens minted by the service.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// Issue mints an access token and a new active refresh token for principalID.
// A nil accessClaims map is resolved through the ClaimsResolver.
func (s *TokenService) Issue(ctx context.Context, principalID string, accessClaims map[string]any, client ClientInfo) (*models.IssuedTokenPair, error) {
	if principalID == "" {
		return nil, fmt.Errorf("%w: empty principal", common.ErrorValidation)
	}

	var pair *models.IssuedTokenPair
	err := s.repomanager.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		claims, err := s.claims(ctx, tx, principalID, accessClaims)
		if err != nil {
			return err
		}
		pair, err = s.issue(ctx, tx, principalID, claims, optional(client.ClientID), client)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Rotate exchanges a presented refresh token for a new pair. Presenting a
// revoked or expired token revokes every session of its principal; that
// revocation is committed before ErrTokenExpiredOrRevoked is returned.
func (s *TokenService) Rotate(ctx context.Context, presentedRaw string, client ClientInfo, accessClaims map[string]any) (*models.IssuedTokenPair, error) {
	if presentedRaw == "" {
		return nil, common.ErrTokenNotFound
	}
	digest := s.hasher.Hash(presentedRaw)

	var (
		pair    *models.IssuedTokenPair
		reused  *models.RefreshToken
		revoked int64
	)
	err := s.repomanager.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)
		now := s.now()

		old, err := repo.FindByHashForUpdate(ctx, digest)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrTokenNotFound
			}
			return fmt.Errorf("find refresh token: %w", err)
		}

		if !old.Active(now) {
			revoked, err = repo.RevokeAllForPrincipal(ctx, old.PrincipalID)
			if err != nil {
				return fmt.Errorf("revoke sessions: %w", err)
			}
			reused = old
			return nil
		}

		if client.ClientID != "" && (old.ClientID == nil || *old.ClientID != client.ClientID) {
			s.log.Warn(ctx, "refresh client mismatch", "principal_id", old.PrincipalID, "jti", old.JTI)
			return common.ErrClientMismatch
		}

		claims, err := s.claims(ctx, tx, old.PrincipalID, accessClaims)
		if err != nil {
			return err
		}
		next, err := s.issue(ctx, tx, old.PrincipalID, claims, old.ClientID, client)
		if err != nil {
			return err
		}
		if err := repo.MarkRotated(ctx, old.ID, next.JTI, now); err != nil {
			if errors.Is(err, common.ErrConflict) {
				return common.ErrTokenExpiredOrRevoked
			}
			return fmt.Errorf("mark rotated: %w", err)
		}
		pair = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reused != nil {
		s.log.Warn(ctx, "refresh token reuse detected", "principal_id", reused.PrincipalID, "jti", reused.JTI, "revoked", revoked)
		s.publish(ctx, events.TypeSessionReuseDetected, reused.PrincipalID, map[string]any{
			"principal_id": reused.PrincipalID,
			"jti":          reused.JTI,
			"revoked":      revoked,
		})
		return nil, common.ErrTokenExpiredOrRevoked
	}
	return pair, nil
}

// RevokeByJTI revokes a single session. Unknown or malformed identifiers
// yield common.ErrTokenNotFound.
func (s *TokenService) RevokeByJTI(ctx context.Context, jti string) error {
	if _, err := uuid.Parse(jti); err != nil {
		return common.ErrTokenNotFound
	}
	repo := s.repomanager.RefreshTokens(s.repomanager.Transactor().Conn())
	if err := repo.RevokeByJTI(ctx, jti); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrTokenNotFound
		}
		return fmt.Errorf("revoke %s: %w", jti, err)
	}
	return nil
}

// RevokeAllForPrincipal revokes every active session and reports how many
// were affected. Nothing to revoke is not an error.
func (s *TokenService) RevokeAllForPrincipal(ctx context.Context, principalID string) (int64, error) {
	repo := s.repomanager.RefreshTokens(s.repomanager.Transactor().Conn())
	n, err := repo.RevokeAllForPrincipal(ctx, principalID)
	if err != nil {
		return 0, fmt.Errorf("revoke sessions: %w", err)
	}
	return n, nil
}

// ListActive returns the principal's unrevoked, unexpired sessions.
func (s *TokenService) ListActive(ctx context.Context, principalID string) ([]*models.RefreshToken, error) {
	repo := s.repomanager.RefreshTokens(s.repomanager.Transactor().Conn())
	return repo.ListActiveForPrincipal(ctx, principalID, s.now())
}

// SweepExpired deletes rows expired at now and revoked rows untouched for the
// configured grace period. The archiver, when set, sees the rows first; an
// archiving failure keeps them.
func (s *TokenService) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed []*models.RefreshToken
	err := s.repomanager.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		removed, err = s.repomanager.RefreshTokens(tx).DeleteSweepable(ctx, now, now.Add(-s.sweepGrace))
		if err != nil {
			return fmt.Errorf("delete sweepable: %w", err)
		}
		if s.archiver != nil && len(removed) > 0 {
			if err := s.archiver.Archive(ctx, removed); err != nil {
				return fmt.Errorf("archive: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "refresh tokens swept", "count", len(removed))
	return int64(len(removed)), nil
}

func (s *TokenService) claims(ctx context.Context, tx dbx.DBTX, principalID string, given map[string]any) (map[string]any, error) {
	if given != nil || s.resolver == nil {
		return given, nil
	}
	claims, err := s.resolver(ctx, tx, principalID)
	if err != nil {
		return nil, fmt.Errorf("resolve claims: %w", err)
	}
	return claims, nil
}

func (s *TokenService) issue(ctx context.Context, tx dbx.DBTX, principalID string, claims map[string]any, clientID *string, client ClientInfo) (*models.IssuedTokenPair, error) {
	now := s.now()

	raw, err := s.hasher.GenerateToken(s.tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	record := &models.RefreshToken{
		ID:          uuid.NewString(),
		JTI:         uuid.NewString(),
		PrincipalID: principalID,
		ClientID:    clientID,
		TokenHash:   s.hasher.Hash(raw),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.refreshTTL),
		IPAddress:   optional(client.IPAddress),
		UserAgent:   optional(client.UserAgent),
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	access, err := s.codec.Issue(principalID, claims, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &models.IssuedTokenPair{
		AccessToken:  access,
		RefreshToken: raw,
		JTI:          record.JTI,
		ExpiresAt:    record.ExpiresAt,
	}, nil
}

func (s *TokenService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.events.Publish(ctx, eventType, key, payload); err != nil {
		s.log.Error(ctx, "publish event", "type", eventType, "error", err)
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
