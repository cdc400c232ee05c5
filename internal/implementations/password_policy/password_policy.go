package passwordpolicy

import (
	"fmt"
	"passreset/internal/core/domain/user"
	"unicode"
)

// MinimumRequirements is the default password policy: a minimum length
// plus at least one letter and one digit. Deployments wanting different
// rules plug in their own user.PasswordPolicy.
type MinimumRequirements struct {
	minLength int
}

func NewMinimumRequirements(minLength int) *MinimumRequirements {
	return &MinimumRequirements{minLength: minLength}
}

func (p *MinimumRequirements) Validate(password user.RawPassword) error {
	runes := []rune(string(password))
	if len(runes) < p.minLength {
		return &user.PasswordPolicyError{
			Reason: fmt.Sprintf("must be at least %d characters long", p.minLength),
		}
	}
	hasLetter := false
	hasDigit := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &user.PasswordPolicyError{
			Reason: "must contain at least one letter and one digit",
		}
	}
	return nil
}
