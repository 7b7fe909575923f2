// Package api holds the JSON wire types of the HTTP transport and the mapping
// of service errors onto gRPC and HTTP status codes.
package api

import (
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Empty struct{}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	ClientID string `json:"client_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	ClientID string `json:"client_id,omitempty"`
}

// RefreshRequest carries the refresh token when it is not sent as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
}

type LogoutRequest struct {
	JTI string `json:"jti,omitempty"`
}

type StartPasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type CompletePasswordResetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register, login and refresh. RefreshToken is
// the only place the raw secret ever appears.
type AuthResponse struct {
	AccessToken      string    `json:"access_token"`
	TokenType        string    `json:"token_type"`
	ExpiresIn        int64     `json:"expires_in"`
	RefreshToken     string    `json:"refresh_token,omitempty"`
	JTI              string    `json:"jti"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	User             *User     `json:"user,omitempty"`
}

type Session struct {
	JTI        string     `json:"jti"`
	ClientID   string     `json:"client_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  time.Time  `json:"expires_at"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
}

type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

type RevokeAllResponse struct {
	Revoked int64 `json:"revoked"`
}

type PingResponse struct {
	Status string `json:"status"`
}

func NewUser(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

// NewAuthResponse builds the response for a freshly issued pair; u may be nil.
func NewAuthResponse(pair *models.IssuedTokenPair, accessTTL time.Duration, u *models.User) *AuthResponse {
	return &AuthResponse{
		AccessToken:      pair.AccessToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     pair.RefreshToken,
		JTI:              pair.JTI,
		RefreshExpiresAt: pair.ExpiresAt,
		User:             NewUser(u),
	}
}

func NewSessionsResponse(records []*models.RefreshToken) *SessionsResponse {
	out := &SessionsResponse{Sessions: make([]Session, 0, len(records))}
	for _, r := range records {
		out.Sessions = append(out.Sessions, Session{
			JTI:        r.JTI,
			ClientID:   deref(r.ClientID),
			CreatedAt:  r.CreatedAt,
			LastUsedAt: r.LastUsedAt,
			ExpiresAt:  r.ExpiresAt,
			IPAddress:  deref(r.IPAddress),
			UserAgent:  deref(r.UserAgent),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
