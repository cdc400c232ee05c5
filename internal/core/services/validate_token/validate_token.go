package validatetoken

import (
	"context"
	"errors"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/token"
	"passreset/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
	Token token.Value
}

type Result struct {
	Valid bool
	Token token.ResetToken
}

type service struct {
	log             logging.Logger
	tokenRepository token.Repository
	now             func() time.Time
}

func New(
	log logging.Logger,
	tokenRepository token.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		tokenRepository: tokenRepository,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Retention sweep. Validation is a convenient trigger because every
	// reset flow passes through here; correctness rests on the expiration
	// check below, so a failed sweep is only worth a warning.
	deleted, err := s.tokenRepository.DeleteExpiredBefore(ctx, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Warning(ctx, "Could not delete expired reset tokens.", logging.Entry("err", err))
	} else if deleted > 0 {
		s.log.Info(ctx, "Expired reset tokens deleted.", logging.Entry("count", deleted))
	}

	t, err := s.tokenRepository.FindActive(ctx, input.Email, input.Token, s.now())
	if errors.Is(err, token.ErrTokenDoesNotExist) {
		return Result{Valid: false}, nil
	}
	if err != nil {
		s.log.Error(ctx, "Could not find active reset token.", logging.Entry("err", err))
		return result, err
	}

	return Result{Valid: true, Token: t}, nil
}
