package resetlinksender

import (
	"context"
	"fmt"
	"net/url"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/notification"
	"passreset/internal/core/domain/token"
	"time"

	"github.com/golang-module/carbon/v2"
)

// Sender composes the reset message around a link of the form
// <base>?token=<token>&email=<email> and hands it to the configured
// notification gateway.
type Sender struct {
	gateway notification.Gateway
	baseURL url.URL
	from    string
	replyTo string
	subject string
}

func New(
	gateway notification.Gateway,
	baseURL url.URL,
	from string,
	replyTo string,
	subject string,
) *Sender {
	if gateway == nil {
		panic(e.NewNilArgumentError("gateway"))
	}
	return &Sender{
		gateway: gateway,
		baseURL: baseURL,
		from:    from,
		replyTo: replyTo,
		subject: subject,
	}
}

func (s *Sender) SendResetLink(
	ctx context.Context,
	email c.Email,
	value token.Value,
	expiresAt time.Time,
) error {
	link := s.baseURL
	query := link.Query()
	query.Set("token", string(value))
	query.Set("email", string(email))
	link.RawQuery = query.Encode()

	body := fmt.Sprintf(
		"To reset your password, please click the link below.\n\n%s\n\nThe link expires %s.",
		link.String(),
		carbon.CreateFromStdTime(expiresAt).DiffForHumans(),
	)

	return s.gateway.Send(ctx, notification.Message{
		From:    s.from,
		To:      string(email),
		ReplyTo: s.replyTo,
		Subject: s.subject,
		Body:    body,
	})
}
