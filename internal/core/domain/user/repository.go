package user

import (
	"context"
	c "passreset/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	Salt         Salt
	CreatedAt    time.Time
}

// Repository is the user directory the reset flow collaborates with. The
// flow only ever looks accounts up by email and replaces credential
// material, it never creates or deletes accounts.
type Repository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, email c.Email, hash PasswordHash, salt Salt) error
}
