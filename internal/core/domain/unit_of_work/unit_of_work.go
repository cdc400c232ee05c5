package uow

import (
	"context"
	"passreset/internal/core/domain/token"
	"passreset/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.Repository
	Tokens() token.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
