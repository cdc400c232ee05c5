package requestreset

import (
	"context"
	"errors"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/token"
	"passreset/internal/core/services"
)

type serviceWithResetLinkSending struct {
	log    logging.Logger
	sender token.ResetLinkSender
	inner  services.Service[Input, Result]
}

// NewWithResetLinkSending sends the reset link after the inner service
// issued a token. Delivery failures are logged and swallowed: the
// request contract is unconditionally "accepted".
func NewWithResetLinkSending(
	log logging.Logger,
	sender token.ResetLinkSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetLinkSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetLinkSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil || !result.Issued {
		return result, err
	}

	t := result.Token
	err = s.sender.SendResetLink(ctx, t.Email, t.Value, t.ExpiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("tokenID", t.ID),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Password reset link has been sent.",
		logging.Entry("tokenID", t.ID),
	)
	return result, nil
}
