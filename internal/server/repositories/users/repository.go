package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository is the principal/credential store consumed by the auth flows.
type Repository interface {
	// Create inserts the user and returns it; common.ErrorAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, hash []byte) error
}
