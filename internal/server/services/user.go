package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/events"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// bcryptCost is lowered by tests.
var bcryptCost = bcrypt.DefaultCost

// dummyHash is compared against when the email is unknown so that a failed
// login costs the same either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gophauth-dummy-password"), bcrypt.DefaultCost)

// RegisterInput is the self-service registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Client   ClientInfo
}

// UserService provides the user-facing authentication operations:
// registration, login, refresh, logout, session listing and password reset.
type UserService struct {
	repomanager repomanager.RepositoryManager
	tokens      *TokenService
	resets      *PasswordResetService
	events      events.Publisher
	log         logging.Logger
	now         timex.Clock
	resetURL    string
}

// NewUserService wires the user flows onto the token and reset services.
func NewUserService(m repomanager.RepositoryManager, tokens *TokenService, resets *PasswordResetService, pub events.Publisher, log logging.Logger, cfg *config.Config) *UserService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &UserService{
		repomanager: m,
		tokens:      tokens,
		resets:      resets,
		events:      pub,
		log:         log.With("module", "users"),
		now:         timex.Now,
		resetURL:    cfg.PasswordResetURL,
	}
}

// UserClaims resolves access token claims from the user store.
func UserClaims(m repomanager.RepositoryManager) ClaimsResolver {
	return func(ctx context.Context, tx dbx.DBTX, principalID string) (map[string]any, error) {
		u, err := m.Users(tx).GetByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		return claimsFor(u), nil
	}
}

func claimsFor(u *models.User) map[string]any {
	return map[string]any{"role": u.Role, "username": u.Username}
}

// CreateUser validates and stores a user with a bcrypt hash of password.
func (s *UserService) CreateUser(ctx context.Context, username, email, password, role string) (*models.User, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	case !validEmail(email):
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	case role != common.RoleUser && role != common.RoleAdmin:
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	u, err := s.repomanager.Users(s.repomanager.Transactor().Conn()).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Register creates a regular user and signs them in.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, *models.IssuedTokenPair, error) {
	u, err := s.CreateUser(ctx, in.Username, in.Email, in.Password, common.RoleUser)
	if err != nil {
		return nil, nil, err
	}
	pair, err := s.tokens.Issue(ctx, u.ID, claimsFor(u), in.Client)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", u.ID)
	s.publish(ctx, events.TypeUserRegistered, u.ID, map[string]any{
		"id": u.ID, "username": u.Username, "email": u.Email, "role": u.Role,
	})
	return u, pair, nil
}

// Login checks the password and issues a new session.
func (s *UserService) Login(ctx context.Context, email, password string, client ClientInfo) (*models.User, *models.IssuedTokenPair, error) {
	u, err := s.repomanager.Users(s.repomanager.Transactor().Conn()).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(ctx, u.ID, claimsFor(u), client)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Refresh rotates the presented refresh token; claims come from the user store.
func (s *UserService) Refresh(ctx context.Context, raw string, client ClientInfo) (*models.IssuedTokenPair, error) {
	return s.tokens.Rotate(ctx, raw, client, nil)
}

// Logout revokes the session identified by jti or, when jti is empty and the
// caller is authenticated, every session of the caller.
func (s *UserService) Logout(ctx context.Context, jti string, principal *auth.Principal) error {
	if jti != "" {
		return s.tokens.RevokeByJTI(ctx, jti)
	}
	if principal != nil {
		_, err := s.tokens.RevokeAllForPrincipal(ctx, principal.ID)
		return err
	}
	return nil
}

// RevokeAll revokes every session of principalID.
func (s *UserService) RevokeAll(ctx context.Context, principalID string) (int64, error) {
	return s.tokens.RevokeAllForPrincipal(ctx, principalID)
}

// Sessions lists the caller's active sessions.
func (s *UserService) Sessions(ctx context.Context, principalID string) ([]*models.RefreshToken, error) {
	return s.tokens.ListActive(ctx, principalID)
}

// Me returns the stored user for principalID.
func (s *UserService) Me(ctx context.Context, principalID string) (*models.User, error) {
	return s.repomanager.Users(s.repomanager.Transactor().Conn()).GetByID(ctx, principalID)
}

// StartPasswordReset mails a reset link to the owner of email. Unknown
// addresses succeed without doing anything.
func (s *UserService) StartPasswordReset(ctx context.Context, email string) error {
	u, err := s.repomanager.Users(s.repomanager.Transactor().Conn()).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Debug(ctx, "password reset for unknown email")
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw, err := s.resets.Initiate(ctx, u.ID)
	if err != nil {
		return err
	}

	link := s.resetURL + "?token=" + url.QueryEscape(raw)
	msg := events.Mail{
		To:      u.Email,
		Subject: "Reset your password",
		Body:    fmt.Sprintf("Hello %s,\n\nuse the link below to choose a new password:\n%s\n", u.Username, link),
	}
	if err := s.events.SendMail(ctx, msg); err != nil {
		s.log.Error(ctx, "reset mail not sent", "user_id", u.ID, "error", err)
		return nil
	}
	s.log.Info(ctx, "password reset initiated", "user_id", u.ID)
	return nil
}

// CompletePasswordReset redeems the reset token, stores the new password and
// revokes every session of the user in one transaction.
func (s *UserService) CompletePasswordReset(ctx context.Context, raw, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	var userID string
	err = s.resets.Redeem(ctx, raw, func(ctx context.Context, tx dbx.DBTX, id string) error {
		if err := s.repomanager.Users(tx).UpdatePasswordHash(ctx, id, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if _, err := s.repomanager.RefreshTokens(tx).RevokeAllForPrincipal(ctx, id); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		userID = id
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password reset completed", "user_id", userID)
	s.publish(ctx, events.TypePasswordResetCompleted, userID, map[string]any{"id": userID})
	return nil
}

// SetPassword replaces the password of the user with email and revokes all
// of their sessions in the same transaction.
func (s *UserService) SetPassword(ctx context.Context, email, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	var userID string
	var revoked int64
	err = s.repomanager.Transactor().WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		u, err := repo.GetByEmail(ctx, normalizeEmail(email))
		if err != nil {
			return err
		}
		if err := repo.UpdatePasswordHash(ctx, u.ID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if revoked, err = s.repomanager.RefreshTokens(tx).RevokeAllForPrincipal(ctx, u.ID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		userID = u.ID
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password set by administrator", "user_id", userID, "revoked", revoked)
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.events.Publish(ctx, eventType, key, payload); err != nil {
		s.log.Error(ctx, "publish event", "type", eventType, "error", err)
	}
}

func hashPassword(password string) ([]byte, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return hash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
