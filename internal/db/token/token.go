package token

import (
	"context"
	"errors"
	"fmt"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/token"
	"passreset/internal/db"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const uniqueViolationCode = "23505"
const activeEmailIndex = "reset_token_active_email_idx"

type PgxTokenRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxTokenRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxTokenRepository{db: db}
}

func (r *PgxTokenRepository) Create(
	ctx context.Context,
	input token.CreateInput,
) (t token.ResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reset_token (email, token, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, token, expires_at, used, created_at`,
		string(input.Email),
		string(input.Value),
		input.ExpiresAt,
		input.CreatedAt,
	)
	t, err = scanToken(row)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == uniqueViolationCode && pgerr.ConstraintName == activeEmailIndex {
			return t, token.ErrActiveTokenAlreadyExists
		}
		return t, err
	}
	return t, nil
}

func (r *PgxTokenRepository) SupersedeActive(ctx context.Context, email c.Email) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reset_token SET used = TRUE WHERE email = $1 AND NOT used`,
		string(email),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTokenRepository) MarkUsed(ctx context.Context, id token.ID) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reset_token SET used = TRUE WHERE id = $1 AND NOT used`,
		int64(id),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTokenRepository) FindActive(
	ctx context.Context,
	email c.Email,
	value token.Value,
	now time.Time,
) (t token.ResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, token, expires_at, used, created_at
		 FROM reset_token
		 WHERE email = $1 AND token = $2 AND NOT used AND expires_at > $3`,
		string(email),
		string(value),
		now,
	)
	t, err = scanToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, token.ErrTokenDoesNotExist
	}
	return t, err
}

func (r *PgxTokenRepository) Read(
	ctx context.Context,
	options token.ReadOptions,
) ([]token.ResetToken, error) {
	where := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	addCondition := func(condition string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(condition, len(args)))
	}
	if options.EmailEquals.IsPresent {
		addCondition("email = $%d", string(options.EmailEquals.Value))
	}
	if options.ValueEquals.IsPresent {
		addCondition("token = $%d", string(options.ValueEquals.Value))
	}
	if options.UsedEquals.IsPresent {
		addCondition("used = $%d", options.UsedEquals.Value)
	}
	if options.ExpiresAfter.IsPresent {
		addCondition("expires_at > $%d", options.ExpiresAfter.Value)
	}
	if options.ExpiresBefore.IsPresent {
		addCondition("expires_at < $%d", options.ExpiresBefore.Value)
	}

	query := `SELECT id, email, token, expires_at, used, created_at FROM reset_token`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]token.ResetToken, 0)
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *PgxTokenRepository) DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reset_token WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanToken(row pgx.Row) (t token.ResetToken, err error) {
	var email, value string
	err = row.Scan(&t.ID, &email, &value, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	t.Email = c.Email(email)
	t.Value = token.Value(value)
	return t, nil
}
