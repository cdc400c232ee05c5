package token

import (
	c "passreset/internal/core/domain/common"
	"time"
)

type ID int64

// Value is the secret reset token. Never logged in clear.
type Value string

func (v Value) String() string {
	return "***"
}

// ResetToken proves the holder received the reset message for an email.
// A row is active while it is unused and unexpired; it is consumed (or
// superseded by a newer request) exactly once and never flips back.
type ResetToken struct {
	ID        ID
	Email     c.Email
	Value     Value
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

func (t ResetToken) IsActive(now time.Time) bool {
	return !t.Used && t.ExpiresAt.After(now)
}
