package models

import "time"

// PasswordReset is a single-use credential reset grant.
type PasswordReset struct {
	ID        string
	UserID    string
	TokenHash string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Redeemable reports whether the grant can still be used at now.
func (p *PasswordReset) Redeemable(now time.Time) bool {
	return !p.Used && now.Before(p.ExpiresAt)
}
