package requestreset

import (
	"context"
	"errors"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/token"
	uow "passreset/internal/core/domain/unit_of_work"
	"passreset/internal/core/domain/user"
	"passreset/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	// Issued is false when the email is not registered. The caller-visible
	// outcome is identical either way, only the result carries the
	// difference for the sending decorator and for test mode.
	Issued bool
	Token  token.ResetToken
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	userRepository user.Repository
	tokenGenerator token.Generator
	validDuration  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	userRepository user.Repository,
	tokenGenerator token.Generator,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Succeed without side effects so the response does not reveal
		// whether the email is registered.
		s.log.Info(ctx, "Password reset requested for unknown email.")
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("err", err),
		)
		return result, err
	}

	for attempt := 0; ; attempt++ {
		result, err = s.issueToken(ctx, u)
		if !errors.Is(err, token.ErrActiveTokenAlreadyExists) || attempt > 0 {
			break
		}
		// A concurrent request for the same email inserted its token
		// between our supersede and insert. Supersede it and try again.
		s.log.Info(
			ctx,
			"Lost the active token race, retrying token issuance.",
			logging.Entry("userID", u.ID),
		)
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token has been issued.",
		logging.Entry("userID", u.ID),
		logging.Entry("tokenID", result.Token.ID),
		logging.Entry("expiresAt", result.Token.ExpiresAt),
	)
	return result, nil
}

func (s *service) issueToken(ctx context.Context, u user.User) (result Result, err error) {
	uw, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer uw.Rollback(ctx)

	if _, err = uw.Tokens().SupersedeActive(ctx, u.Email); err != nil {
		return result, err
	}
	now := s.now()
	created, err := uw.Tokens().Create(ctx, token.CreateInput{
		Email:     u.Email,
		Value:     s.tokenGenerator.GenerateToken(),
		ExpiresAt: now.Add(s.validDuration),
		CreatedAt: now,
	})
	if err != nil {
		return result, err
	}
	if err = uw.Commit(ctx); err != nil {
		return result, err
	}
	return Result{Issued: true, Token: created}, nil
}
