package token

import (
	"context"
	"fmt"
	c "passreset/internal/core/domain/common"
	"sync"
	"time"
)

type FakeRepository struct {
	Tokens      []ResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Tokens: make([]ResetToken, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (t ResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create reset token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, t := range r.Tokens {
		if t.Email == input.Email && !t.Used {
			return t, ErrActiveTokenAlreadyExists
		}
		maxID = t.ID
	}
	t = ResetToken{
		ID:        maxID + 1,
		Email:     input.Email,
		Value:     input.Value,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: input.CreatedAt,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakeRepository) SupersedeActive(ctx context.Context, email c.Email) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not supersede active tokens for %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	count := int64(0)
	for ix, t := range r.Tokens {
		if t.Email == email && !t.Used {
			r.Tokens[ix].Used = true
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) MarkUsed(ctx context.Context, id ID) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not mark token %v used", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.ID == id && !t.Used {
			r.Tokens[ix].Used = true
			return 1, nil
		}
	}
	return 0, nil
}

func (r *FakeRepository) FindActive(
	ctx context.Context,
	email c.Email,
	value Value,
	now time.Time,
) (t ResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not find active token for %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.Email == email && t.Value == value && t.IsActive(now) {
			return t, nil
		}
	}
	return t, ErrTokenDoesNotExist
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]ResetToken, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]ResetToken, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if options.EmailEquals.IsPresent && t.Email != options.EmailEquals.Value {
			continue
		}
		if options.ValueEquals.IsPresent && t.Value != options.ValueEquals.Value {
			continue
		}
		if options.UsedEquals.IsPresent && t.Used != options.UsedEquals.Value {
			continue
		}
		if options.ExpiresAfter.IsPresent && !t.ExpiresAt.After(options.ExpiresAfter.Value) {
			continue
		}
		if options.ExpiresBefore.IsPresent && !t.ExpiresAt.Before(options.ExpiresBefore.Value) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (r *FakeRepository) DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete expired tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := make([]ResetToken, 0, len(r.Tokens))
	deleted := int64(0)
	for _, t := range r.Tokens {
		if t.ExpiresAt.Before(now) {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	r.Tokens = kept
	return deleted, nil
}

type FakeGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{}
}

func (g *FakeGenerator) GenerateToken() Value {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return Value(fmt.Sprintf("test-token-%d", g.counter))
}

type SentResetLink struct {
	Email     c.Email
	Value     Value
	ExpiresAt time.Time
}

type FakeResetLinkSender struct {
	Sent        []SentResetLink
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetLinkSender() *FakeResetLinkSender {
	return &FakeResetLinkSender{}
}

func (s *FakeResetLinkSender) SendResetLink(
	ctx context.Context,
	email c.Email,
	value Value,
	expiresAt time.Time,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset link to %v", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetLink{Email: email, Value: value, ExpiresAt: expiresAt})
	return nil
}

func (s *FakeResetLinkSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeResetLinkSender) LastSent() SentResetLink {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
