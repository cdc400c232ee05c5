package tokengenerator

import (
	"net/url"
	"passreset/internal/core/domain/token"
	"testing"
)

func TestTokensAreUnique(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[token.Value]struct{})
	for i := 0; i < 100; i++ {
		value := generator.GenerateToken()
		if string(value) == "" {
			t.Fatal("token must not be empty")
		}
		if _, ok := tokens[value]; ok {
			t.Fatalf("token %v already exists", string(value))
		}
		tokens[value] = struct{}{}
	}
}

func TestTokensAreURLSafe(t *testing.T) {
	generator := NewGenerator()
	for i := 0; i < 100; i++ {
		value := string(generator.GenerateToken())
		if url.QueryEscape(value) != value {
			t.Fatalf("token %v is not URL-safe", value)
		}
	}
}
