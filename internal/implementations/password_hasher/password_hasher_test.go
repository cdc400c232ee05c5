package passwordhasher

import (
	"passreset/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

const ITERATIONS = 1000

func TestHashedPasswordValidates(t *testing.T) {
	cases := []string{"test", "p@ssw0rd-1234", "пароль", "a"}

	hasher := NewPBKDF2(ITERATIONS)
	for _, password := range cases {
		t.Run(password, func(t *testing.T) {
			hash, salt, err := hasher.HashPassword(user.RawPassword(password))

			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.NotEmpty(t, salt)
			require.True(t, hasher.ValidatePassword(user.RawPassword(password), hash, salt))
		})
	}
}

func TestWrongPasswordDoesNotValidate(t *testing.T) {
	hasher := NewPBKDF2(ITERATIONS)
	hash, salt, err := hasher.HashPassword(user.RawPassword("correct-password"))
	require.NoError(t, err)

	require.False(t, hasher.ValidatePassword(user.RawPassword("wrong-password"), hash, salt))
}

func TestWrongSaltDoesNotValidate(t *testing.T) {
	hasher := NewPBKDF2(ITERATIONS)
	hash, _, err := hasher.HashPassword(user.RawPassword("test"))
	require.NoError(t, err)
	_, otherSalt, err := hasher.HashPassword(user.RawPassword("test"))
	require.NoError(t, err)

	require.False(t, hasher.ValidatePassword(user.RawPassword("test"), hash, otherSalt))
}

func TestSaltIsUniquePerCall(t *testing.T) {
	hasher := NewPBKDF2(ITERATIONS)

	_, firstSalt, err := hasher.HashPassword(user.RawPassword("test"))
	require.NoError(t, err)
	_, secondSalt, err := hasher.HashPassword(user.RawPassword("test"))
	require.NoError(t, err)

	require.NotEqual(t, firstSalt, secondSalt)
}
