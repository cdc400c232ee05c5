package user

import (
	"context"
	"errors"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/user"
	"passreset/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const uniqueViolationCode = "23505"
const emailIndex = "app_user_email_idx"

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(
	ctx context.Context,
	input user.CreateUserInput,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO app_user (email, password_hash, salt, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password_hash, salt, created_at`,
		string(input.Email),
		string(input.PasswordHash),
		string(input.Salt),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == uniqueViolationCode && pgerr.ConstraintName == emailIndex {
			return u, user.ErrEmailAlreadyExists
		}
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, salt, created_at FROM app_user WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	email c.Email,
	hash user.PasswordHash,
	salt user.Salt,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE app_user SET password_hash = $1, salt = $2 WHERE email = $3`,
		string(hash),
		string(salt),
		string(email),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var email, hash, salt string
	err = row.Scan(&u.ID, &email, &hash, &salt, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(hash)
	u.Salt = user.Salt(salt)
	return u, nil
}
