package user

import (
	"context"
	"errors"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/user"
	"passreset/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	SALT          = "test-salt"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	u := s.createUser(EMAIL)

	assert := s.Require()
	assert.NotZero(u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.Equal(user.Salt(SALT), u.Salt)
	assert.True(u.CreatedAt.Equal(NOW))
}

func (s *testSuite) TestEmailAlreadyExistsError() {
	s.createUser(EMAIL)

	_, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Salt:         user.Salt(SALT),
		CreatedAt:    NOW,
	})

	s.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByEmail() {
	created := s.createUser(EMAIL)

	found, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(created.ID, found.ID)
	assert.Equal(created.PasswordHash, found.PasswordHash)
	assert.Equal(created.Salt, found.Salt)
}

func (s *testSuite) TestGetByEmailIsCaseSensitive() {
	s.createUser(EMAIL)

	_, err := s.repo.GetByEmail(context.Background(), c.Email("TEST@test.test"))

	s.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestGetByEmailNotFound() {
	_, err := s.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))

	s.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestSetPassword() {
	u := s.createUser(EMAIL)

	err := s.repo.SetPassword(
		context.Background(),
		c.Email(EMAIL),
		user.PasswordHash("new-password-hash"),
		user.Salt("new-salt"),
	)

	assert := s.Require()
	assert.Nil(err)
	updated, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(u.ID, updated.ID)
	assert.Equal(user.PasswordHash("new-password-hash"), updated.PasswordHash)
	assert.Equal(user.Salt("new-salt"), updated.Salt)
}

func (s *testSuite) TestSetPasswordReturnsErrorIfUserDoesNotExist() {
	u := s.createUser(EMAIL)

	err := s.repo.SetPassword(
		context.Background(),
		c.Email("unknown@test.test"),
		user.PasswordHash("new-password-hash"),
		user.Salt("new-salt"),
	)

	assert := s.Require()
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
	unchanged, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(u.PasswordHash, unchanged.PasswordHash)
	assert.Equal(u.Salt, unchanged.Salt)
}

func (s *testSuite) createUser(email string) user.User {
	s.T().Helper()
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Salt:         user.Salt(SALT),
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	return u
}
