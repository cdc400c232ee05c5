package services

import (
	"passreset/internal/app/deps"
	"passreset/internal/core/services"
	requestreset "passreset/internal/core/services/request_reset"
	resetpassword "passreset/internal/core/services/reset_password"
	validatetoken "passreset/internal/core/services/validate_token"
)

type Services struct {
	RequestReset  services.Service[requestreset.Input, requestreset.Result]
	ValidateToken services.Service[validatetoken.Input, validatetoken.Result]
	ResetPassword services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RequestReset = requestreset.NewWithResetLinkSending(
		deps.Logger,
		deps.ResetLinkSender,
		requestreset.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.UserRepository,
			deps.TokenGenerator,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ValidateToken = validatetoken.New(
		deps.Logger,
		deps.TokenRepository,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordPolicy,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
