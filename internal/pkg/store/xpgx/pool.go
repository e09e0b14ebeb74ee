package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/constituency/internal/pkg/logger"
)

// Pool is the subset of a pgx pool the stores use, extended with helpers
// taking squirrel builders.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

// NewPool connects to dsn, retrying the first ping with exponential backoff.
func NewPool(ctx context.Context, dsn string, maxRetries uint64) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	err = backoff.Retry(
		func() error {
			pingErr := p.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "postgres ping failed: %s", pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx),
	)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return &pool{Pool: p}, nil
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.Pool.Exec(ctx, sql, args...)
}

func (p *pool) Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.Pool.Query(ctx, sql, args...)
}

// Selectx runs query and maps every row onto T by its db tags.
func Selectx[T any](ctx context.Context, p Pool, query sq.Sqlizer) ([]*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
}
