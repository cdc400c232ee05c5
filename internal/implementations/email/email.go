package email

import (
	"context"
	"passreset/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type SESGateway struct {
	ses *ses.Client
}

func NewSESGateway(awsConfig aws.Config) *SESGateway {
	return &SESGateway{ses: ses.NewFromConfig(awsConfig)}
}

func (g *SESGateway) Send(ctx context.Context, m notification.Message) error {
	input := &ses.SendEmailInput{
		// This address must be verified with Amazon SES.
		Source: aws.String(m.From),
		Destination: &types.Destination{
			CcAddresses: []string{},
			ToAddresses: []string{m.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String(charset),
				Data:    aws.String(m.Subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String(charset),
					Data:    aws.String(m.Body),
				},
			},
		},
	}
	if m.ReplyTo != "" {
		input.ReplyToAddresses = []string{m.ReplyTo}
	}
	_, err := g.ses.SendEmail(ctx, input)
	return err
}
