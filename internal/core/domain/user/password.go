package user

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, Salt, error)
	ValidatePassword(password RawPassword, hash PasswordHash, salt Salt) bool
}

// PasswordPolicy decides whether a new password is acceptable. The check
// returns a *PasswordPolicyError describing the violated rule.
type PasswordPolicy interface {
	Validate(password RawPassword) error
}
