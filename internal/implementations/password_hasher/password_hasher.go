package passwordhasher

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"passreset/internal/core/domain/user"

	"golang.org/x/crypto/pbkdf2"
)

const saltByteCount = 64
const keyByteCount = 64

// PBKDF2 derives password hashes with PBKDF2-SHA512 and a fresh random
// salt per call. The iteration count is the key-stretching knob.
type PBKDF2 struct {
	iterations int
}

func NewPBKDF2(iterations int) *PBKDF2 {
	if iterations <= 0 {
		panic(fmt.Sprintf("invalid PBKDF2 iteration count: %d", iterations))
	}
	return &PBKDF2{iterations: iterations}
}

func (h *PBKDF2) HashPassword(password user.RawPassword) (hash user.PasswordHash, salt user.Salt, err error) {
	saltBytes := make([]byte, saltByteCount)
	if _, err := rand.Read(saltBytes); err != nil {
		return hash, salt, fmt.Errorf("could not generate password salt: %w", err)
	}
	salt = user.Salt(hex.EncodeToString(saltBytes))
	return h.hashWithSalt(password, salt), salt, nil
}

func (h *PBKDF2) ValidatePassword(password user.RawPassword, hash user.PasswordHash, salt user.Salt) bool {
	expected := h.hashWithSalt(password, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(hash)) == 1
}

func (h *PBKDF2) hashWithSalt(password user.RawPassword, salt user.Salt) user.PasswordHash {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, keyByteCount, sha512.New)
	return user.PasswordHash(base64.StdEncoding.EncodeToString(key))
}
