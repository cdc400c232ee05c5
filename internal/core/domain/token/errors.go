package token

import "errors"

var (
	// ErrTokenDoesNotExist uniformly covers never-issued, expired and
	// already-used tokens so the caller cannot tell them apart.
	ErrTokenDoesNotExist = errors.New("reset token does not exist")

	// ErrActiveTokenAlreadyExists reports the insert side of the
	// one-active-token-per-email rule, raised when a concurrent request
	// issued a token for the same email first.
	ErrActiveTokenAlreadyExists = errors.New("active reset token already exists")
)
