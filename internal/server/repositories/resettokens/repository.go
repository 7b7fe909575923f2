// Package resettokens persists single-use password reset grants.
package resettokens

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository stores reset grants by digest.
type Repository interface {
	Create(ctx context.Context, p *models.PasswordReset) error

	// FindByHashForUpdate returns the grant and locks it until the surrounding
	// transaction ends; common.ErrorNotFound when absent.
	FindByHashForUpdate(ctx context.Context, tokenHash string) (*models.PasswordReset, error)

	// MarkUsed flips used to true; common.ErrConflict when it already was.
	MarkUsed(ctx context.Context, id string) error
}
