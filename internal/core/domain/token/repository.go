package token

import (
	"context"
	c "passreset/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	Email     c.Email
	Value     Value
	ExpiresAt time.Time
	CreatedAt time.Time
}

type ReadOptions struct {
	EmailEquals   c.Optional[c.Email]
	ValueEquals   c.Optional[Value]
	UsedEquals    c.Optional[bool]
	ExpiresAfter  c.Optional[time.Time]
	ExpiresBefore c.Optional[time.Time]
}

// Repository is the reset token store. At most one row per email may be
// unused at any time; Create reports ErrActiveTokenAlreadyExists when a
// concurrent writer got there first.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (ResetToken, error)
	// SupersedeActive marks every unused token for the email as used and
	// returns the number of rows affected. Rows are kept, not deleted,
	// to preserve the audit trail.
	SupersedeActive(ctx context.Context, email c.Email) (int64, error)
	// MarkUsed consumes one specific token. The update is conditional on
	// the row still being unused, so the affected count tells the caller
	// whether it won against concurrent consumers and reissues.
	MarkUsed(ctx context.Context, id ID) (int64, error)
	FindActive(ctx context.Context, email c.Email, value Value, now time.Time) (ResetToken, error)
	Read(ctx context.Context, options ReadOptions) ([]ResetToken, error)
	// DeleteExpiredBefore reclaims storage taken by expired rows. It is
	// an optimization, correctness never depends on it.
	DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error)
}
