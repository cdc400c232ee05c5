package user

import (
	c "passreset/internal/core/domain/common"
	"time"
)

type ID int64

// PasswordHash is derived credential material. Never logged in clear.
type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

// Salt is the per-user random salt the hash was derived with.
type Salt string

func (s Salt) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	Salt         Salt
	CreatedAt    time.Time
}
