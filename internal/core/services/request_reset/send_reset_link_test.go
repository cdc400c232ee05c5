package requestreset

import (
	"context"
	"errors"
	"fmt"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/token"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var errTest = fmt.Errorf("test error")

type stubRequestResetService struct {
	result Result
	err    error
}

func (s *stubRequestResetService) Run(ctx context.Context, input Input) (Result, error) {
	return s.result, s.err
}

type sendingTestSuite struct {
	suite.Suite
	log    *logging.FakeLogger
	sender *token.FakeResetLinkSender
}

func (suite *sendingTestSuite) SetupTest() {
	suite.log = logging.NewFakeLogger()
	suite.sender = token.NewFakeResetLinkSender()
}

func TestSendResetLinkService(t *testing.T) {
	suite.Run(t, new(sendingTestSuite))
}

func (s *sendingTestSuite) TestLinkSentForIssuedToken() {
	issued := token.ResetToken{
		ID:        token.ID(1),
		Email:     EMAIL,
		Value:     token.Value("test-token"),
		ExpiresAt: NOW.Add(time.Hour),
	}
	service := NewWithResetLinkSending(
		s.log,
		s.sender,
		&stubRequestResetService{result: Result{Issued: true, Token: issued}},
	)

	result, err := service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.NoError(err)
	assert.True(result.Issued)
	assert.Equal(1, s.sender.SentCount())
	assert.Equal(issued.Value, s.sender.LastSent().Value)
	assert.Equal(issued.Email, s.sender.LastSent().Email)
}

func (s *sendingTestSuite) TestNothingSentForUnknownEmail() {
	service := NewWithResetLinkSending(
		s.log,
		s.sender,
		&stubRequestResetService{result: Result{Issued: false}},
	)

	result, err := service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.NoError(err)
	assert.False(result.Issued)
	assert.Equal(0, s.sender.SentCount())
}

func (s *sendingTestSuite) TestDeliveryFailureIsSwallowed() {
	s.sender.ReturnError = true
	service := NewWithResetLinkSending(
		s.log,
		s.sender,
		&stubRequestResetService{result: Result{Issued: true, Token: token.ResetToken{Email: EMAIL}}},
	)

	_, err := service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(1, s.log.LoggedCount(logging.ERROR))
}

func (s *sendingTestSuite) TestInnerServiceErrorIsPropagated() {
	service := NewWithResetLinkSending(
		s.log,
		s.sender,
		&stubRequestResetService{err: errTest},
	)

	_, err := service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.True(errors.Is(err, errTest))
	assert.Equal(0, s.sender.SentCount())
}
