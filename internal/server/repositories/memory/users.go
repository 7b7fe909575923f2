package memory

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Users implements users.Repository.
type Users struct {
	s  *Store
	db dbx.DBTX
}

func (r *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	defer r.s.lock(r.db)()

	for _, u := range r.s.users {
		if u.ID == user.ID || strings.EqualFold(u.Email, user.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.s.users[user.ID] = copyUser(user)
	return user, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer r.s.lock(r.db)()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer r.s.lock(r.db)()

	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(u), nil
}

func (r *Users) UpdatePasswordHash(ctx context.Context, id string, hash []byte) error {
	defer r.s.lock(r.db)()

	u, ok := r.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = append([]byte(nil), hash...)
	return nil
}
