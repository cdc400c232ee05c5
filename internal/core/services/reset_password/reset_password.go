package resetpassword

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
	Email       c.Email
	Token       token.Value
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordPolicy user.PasswordPolicy
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordPolicy user.PasswordPolicy,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordPolicy == nil {
		panic(e.NewNilArgumentError("passwordPolicy"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordPolicy: passwordPolicy,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uw, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uw.Rollback(ctx)

	// Validated from scratch: the flow is stateless between requests and
	// a token that rendered a form minutes ago may be gone by now.
	t, err := uw.Tokens().FindActive(ctx, input.Email, input.Token, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, token.ErrTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset attempted with an unusable token.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not find active reset token.", logging.Entry("err", err))
		return result, err
	}

	if err = s.passwordPolicy.Validate(input.NewPassword); err != nil {
		s.log.Info(ctx, "New password rejected by policy.", logging.Entry("err", err))
		return result, err
	}

	// Consumes the matched row and no other. The update is conditional
	// on that row still being unused, so the loser of any race affects
	// zero rows: a concurrent consumer of the same token, or a
	// concurrent reset request that superseded it after the find above.
	consumed, err := uw.Tokens().MarkUsed(ctx, t.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not consume reset token.", logging.Entry("err", err))
		return result, err
	}
	if consumed == 0 {
		s.log.Info(ctx, "Reset token was superseded or consumed concurrently.", logging.Entry("tokenID", t.ID))
		return result, token.ErrTokenDoesNotExist
	}

	hash, salt, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}
	err = uw.Users().SetPassword(ctx, input.Email, hash, salt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Could not update password, user does not exist.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not update user password.", logging.Entry("err", err))
		return result, err
	}

	if err = uw.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Password has been reset.",
		logging.Entry("tokenID", t.ID),
	)
	return result, nil
}
