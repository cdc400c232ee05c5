package token

import (
	"context"
	c "passreset/internal/core/domain/common"
	"time"
)

type ResetLinkSender interface {
	SendResetLink(ctx context.Context, email c.Email, value Value, expiresAt time.Time) error
}
