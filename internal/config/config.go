package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	TransportSES  = "ses"
	TransportAMQP = "amqp"
)

type Config struct {
	IsTestMode  bool   `env:"TEST_MODE" envDefault:"false"`
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:9090"`

	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`

	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordHashIterations     int           `env:"PASSWORD_HASH_ITERATIONS" envDefault:"10000"`
	PasswordMinLength          int           `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`

	// Domain is the public host the reset link points at.
	Domain           string   `env:"DOMAIN,notEmpty"`
	SenderAddress    string   `env:"SENDER_ADDRESS,notEmpty"`
	ReplyToAddress   string   `env:"REPLYTO_ADDRESS"`
	ResetSubjectLine string   `env:"RESET_SUBJECT_LINE" envDefault:"Password reset"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	// NotificationTransport selects how the reset message leaves the
	// process: "ses" sends directly, "amqp" publishes to a queue for an
	// external mail worker.
	NotificationTransport string `env:"NOTIFICATION_TRANSPORT" envDefault:"ses"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	RabbitmqURL               string `env:"RABBITMQ_URL"`
	RabbitmqNotificationQueue string `env:"RABBITMQ_NOTIFICATION_QUEUE" envDefault:"password-reset-emails"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ResetLinkBaseURL is where the emailed link lands.
func (c *Config) ResetLinkBaseURL() url.URL {
	return url.URL{Scheme: "https", Host: c.Domain, Path: "/user/reset-password"}
}
