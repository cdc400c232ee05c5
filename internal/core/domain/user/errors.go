package user

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
)

// PasswordPolicyError carries the user-facing reason a new password was
// rejected.
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string {
	return fmt.Sprintf("password does not meet minimum requirements: %s", e.Reason)
}
