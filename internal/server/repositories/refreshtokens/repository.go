// Package refreshtokens declares the server-side repository contract for
// refresh token records in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists refresh token records. Lookups by raw token are not
// possible; callers pass the digest.
type Repository interface {
	// Create stores a new active record.
	Create(ctx context.Context, t *models.RefreshToken) error

	// FindByHash returns the record with the given digest or common.ErrorNotFound.
	FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// FindByHashForUpdate is FindByHash holding a row lock until the
	// surrounding transaction ends.
	FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// FindByJTI returns the record with the given jti or common.ErrorNotFound.
	FindByJTI(ctx context.Context, jti string) (*models.RefreshToken, error)

	// MarkRotated revokes an active record and links it to its successor.
	// It returns common.ErrConflict when the record was already revoked.
	MarkRotated(ctx context.Context, id, replacedByJTI string, usedAt time.Time) error

	// RevokeByJTI revokes the record; common.ErrorNotFound when absent.
	RevokeByJTI(ctx context.Context, jti string) error

	// RevokeAllForPrincipal revokes every active record of the principal and
	// returns how many changed. Zero is not an error.
	RevokeAllForPrincipal(ctx context.Context, principalID string) (int64, error)

	// ListActiveForPrincipal returns unrevoked records expiring after now,
	// newest first.
	ListActiveForPrincipal(ctx context.Context, principalID string, now time.Time) ([]*models.RefreshToken, error)

	// DeleteSweepable removes records expired at now, and revoked records
	// last touched at or before revokedBefore, returning what was removed.
	DeleteSweepable(ctx context.Context, now, revokedBefore time.Time) ([]*models.RefreshToken, error)
}
