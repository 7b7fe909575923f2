package memory

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// Manager vends repositories over a single Store.
type Manager struct {
	store *Store
}

func NewManager() *Manager {
	return &Manager{store: NewStore()}
}

// RunMigrations is a no-op; the store has no schema.
func (m *Manager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *Manager) Transactor() dbx.Transactor {
	return m.store
}

func (m *Manager) Users(db dbx.DBTX) users.Repository {
	return &Users{s: m.store, db: db}
}

func (m *Manager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &RefreshTokens{s: m.store, db: db}
}

func (m *Manager) ResetTokens(db dbx.DBTX) resettokens.Repository {
	return &ResetTokens{s: m.store, db: db}
}
