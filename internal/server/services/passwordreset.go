package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/secrets"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/google/uuid"
)

const resetTokenBytes = 32

// CredentialSetter replaces the credential of userID using the redeeming
// transaction.
type CredentialSetter func(ctx context.Context, tx dbx.DBTX, userID string) error

// PasswordResetService issues and redeems single-use reset grants.
type PasswordResetService struct {
	repomanager repomanager.RepositoryManager
	hasher      *secrets.Hasher
	validity    time.Duration
	now         timex.Clock
}

// NewPasswordResetService builds the service. A nil clock means timex.Now.
func NewPasswordResetService(m repomanager.RepositoryManager, hasher *secrets.Hasher, validity time.Duration, now timex.Clock) *PasswordResetService {
	if now == nil {
		now = timex.Now
	}
	return &PasswordResetService{repomanager: m, hasher: hasher, validity: validity, now: now}
}

// Initiate stores a new grant for userID and returns its raw secret.
// Earlier outstanding grants stay valid.
func (s *PasswordResetService) Initiate(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user", common.ErrorValidation)
	}
	raw, err := s.hasher.GenerateToken(resetTokenBytes)
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	now := s.now()
	grant := &models.PasswordReset{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: s.hasher.Hash(raw),
		ExpiresAt: now.Add(s.validity),
		CreatedAt: now,
	}
	repo := s.repomanager.ResetTokens(s.repomanager.Transactor().Conn())
	if err := repo.Create(ctx, grant); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return raw, nil
}

// Redeem consumes the grant and runs setter in the same transaction; either
// both the credential change and the consumption commit or neither does.
func (s *PasswordResetService) Redeem(ctx context.Context, raw string, setter CredentialSetter) error {
	if raw == "" {
		return common.ErrTokenNotFound
	}
	digest := s.hasher.Hash(raw)

	return s.repomanager.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.ResetTokens(tx)

		grant, err := repo.FindByHashForUpdate(ctx, digest)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrTokenNotFound
			}
			return fmt.Errorf("find reset token: %w", err)
		}
		if !grant.Redeemable(s.now()) {
			return common.ErrTokenExpiredOrRevoked
		}

		if err := setter(ctx, tx, grant.UserID); err != nil {
			return err
		}

		if err := repo.MarkUsed(ctx, grant.ID); err != nil {
			if errors.Is(err, common.ErrConflict) {
				return common.ErrTokenExpiredOrRevoked
			}
			return fmt.Errorf("mark reset token used: %w", err)
		}
		return nil
	})
}
