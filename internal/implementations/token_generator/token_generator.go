package tokengenerator

import (
	"crypto/rand"
	"encoding/base64"
	"passreset/internal/core/domain/token"
)

// 64 random bytes, 512 bits of entropy.
const tokenByteCount = 64

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateToken returns a URL-safe rendering of tokenByteCount bytes
// from the platform CSPRNG.
func (g *Generator) GenerateToken() token.Value {
	b := make([]byte, tokenByteCount)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return token.Value(base64.RawURLEncoding.EncodeToString(b))
}
