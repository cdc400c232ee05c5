package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/token"
	"passreset/internal/core/domain/user"
	"passreset/internal/core/services"
	service "passreset/internal/core/services/reset_password"
	"passreset/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	passwordMismatchMessage = "Passwords do not match. Please try again."
	invalidTokenMessage     = "Token not found. Please try the reset password process again."
	successMessage          = "Password reset. Please login with your new password."
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password1, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Password2, validation.Required, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	// Checked before any storage access, a mismatch must not consume
	// the token.
	if input.Password1 != input.Password2 {
		response.RenderBusinessError(rw, passwordMismatchMessage)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:       c.Email(input.Email),
			Token:       token.Value(input.Token),
			NewPassword: user.RawPassword(input.Password1),
		},
	)
	if err != nil {
		var policyErr *user.PasswordPolicyError
		switch {
		case errors.Is(err, token.ErrTokenDoesNotExist):
			response.RenderBusinessError(rw, invalidTokenMessage)
		case errors.As(err, &policyErr):
			response.RenderBusinessError(rw, policyErr.Error())
		case errors.Is(err, user.ErrUserDoesNotExist):
			// Indistinguishable from a bad token on purpose.
			response.RenderBusinessError(rw, invalidTokenMessage)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderOK(rw, successMessage)
}
