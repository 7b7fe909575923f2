// Package memory is an in-process implementation of the repositories, used by
// tests and by `-d memory` development runs. Transactions are serialised and
// roll back by restoring a snapshot, which gives the same per-record
// exclusivity that row locks give on PostgreSQL.
package memory

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

var errNoSQL = errors.New("memory store does not execute sql")

// Store holds every table of the schema.
type Store struct {
	txMu    sync.Mutex
	users   map[string]*models.User
	refresh map[string]*models.RefreshToken
	resets  map[string]*models.PasswordReset
}

func NewStore() *Store {
	return &Store{
		users:   map[string]*models.User{},
		refresh: map[string]*models.RefreshToken{},
		resets:  map[string]*models.PasswordReset{},
	}
}

// conn is the DBTX handed to repositories. It only marks whether the caller
// already holds the transaction lock.
type conn struct {
	inTx bool
}

func (c *conn) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (c *conn) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

// QueryRowContext must not be called; *sql.Row cannot carry an error
// without a driver.
func (c *conn) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

// Conn returns the non-transactional handle.
func (s *Store) Conn() dbx.DBTX {
	return &conn{}
}

// WithinTx runs fn exclusively; any error or panic restores the state seen
// at the start.
func (s *Store) WithinTx(ctx context.Context, fn dbx.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(ctx, &conn{inTx: true})
}

// lock serialises a single statement issued outside a transaction.
func (s *Store) lock(db dbx.DBTX) func() {
	if c, ok := db.(*conn); ok && c.inTx {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

type snapshot struct {
	users   map[string]*models.User
	refresh map[string]*models.RefreshToken
	resets  map[string]*models.PasswordReset
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		users:   make(map[string]*models.User, len(s.users)),
		refresh: make(map[string]*models.RefreshToken, len(s.refresh)),
		resets:  make(map[string]*models.PasswordReset, len(s.resets)),
	}
	for k, v := range s.users {
		snap.users[k] = copyUser(v)
	}
	for k, v := range s.refresh {
		snap.refresh[k] = copyRefresh(v)
	}
	for k, v := range s.resets {
		snap.resets[k] = copyReset(v)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.refresh = snap.refresh
	s.resets = snap.resets
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &c
}

func copyRefresh(t *models.RefreshToken) *models.RefreshToken {
	c := *t
	c.ClientID = copyString(t.ClientID)
	c.ReplacedByJTI = copyString(t.ReplacedByJTI)
	c.IPAddress = copyString(t.IPAddress)
	c.UserAgent = copyString(t.UserAgent)
	if t.LastUsedAt != nil {
		v := *t.LastUsedAt
		c.LastUsedAt = &v
	}
	return &c
}

func copyReset(p *models.PasswordReset) *models.PasswordReset {
	c := *p
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
