package validateresettoken

import (
	"net/http"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/token"
	"passreset/internal/core/services"
	service "passreset/internal/core/services/validate_token"
	"passreset/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const invalidTokenMessage = "Token has expired. Please try password reset again."

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
	Email string
	Token string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
	)
}

type Result struct {
	Status  string `json:"status"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := Input{
		Email: query.Get("email"),
		Token: query.Get("token"),
	}
	// A link with missing or mangled parameters gets the same verdict as
	// an expired token, the outcome never explains what was wrong.
	if err := input.Validate(); err != nil {
		renderInvalid(rw)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Email: c.Email(input.Email),
			Token: token.Value(input.Token),
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if !result.Valid {
		renderInvalid(rw)
		return
	}
	response.Render(rw, Result{Status: response.StatusOK, Valid: true}, http.StatusOK)
}

func renderInvalid(rw http.ResponseWriter) {
	response.Render(rw, Result{
		Status:  response.StatusOK,
		Valid:   false,
		Message: invalidTokenMessage,
	}, http.StatusOK)
}
