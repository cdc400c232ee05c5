package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "passreset/internal/core/domain/common"
	"sync"
)

type FakeRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Users: make([]User, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Salt:         input.Salt,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeRepository) SetPassword(ctx context.Context, email c.Email, hash PasswordHash, salt Salt) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.Email == email {
			r.Users[ix].PasswordHash = hash
			r.Users[ix].Salt = salt
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, Salt, error) {
	salt := Salt("fake-salt")
	return h.hashWithSalt(password, salt), salt, nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash, salt Salt) bool {
	return h.hashWithSalt(password, salt) == hash
}

func (h *FakePasswordHasher) hashWithSalt(password RawPassword, salt Salt) PasswordHash {
	hash := md5.New()
	io.WriteString(hash, string(password))
	io.WriteString(hash, string(salt))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil)))
}

type FakePasswordPolicy struct {
	Err error
}

func NewFakePasswordPolicy() *FakePasswordPolicy {
	return &FakePasswordPolicy{}
}

func (p *FakePasswordPolicy) Validate(password RawPassword) error {
	return p.Err
}
