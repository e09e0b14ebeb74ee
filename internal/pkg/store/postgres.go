package store

import (
	"context"
	"fmt"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/store/xpgx"
)

const postgresSchema = `
create table if not exists complaints (
	complaint_id          bigint primary key,
	pincode               text not null,
	vs_id                 text not null,
	complainant_name      text not null,
	complainant_email     text not null,
	complainant_phone     text not null default '',
	complaint_description text not null,
	complaint_category    text not null default '',
	complaint_status      text not null default 'NEW',
	submitted_date        timestamptz not null
)`

type store struct {
	pool Pool
}

// NewStore returns a Postgres-backed Store, creating the table if needed.
func NewStore(ctx context.Context, pool Pool) (Store, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("create complaints table: %w", err)
	}
	return &store{pool}, nil
}

func (s *store) InsertComplaint(ctx context.Context, complaint *domain.Complaint) error {
	query := builder().Insert(tableComplaints).
		Columns(complaintColumns...).
		Values(complaintValues(complaint)...)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "insert complaint %d: %s", complaint.ID, err.Error())
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListComplaints(ctx context.Context) ([]*domain.Complaint, error) {
	query := builder().Select(complaintColumns...).
		From(tableComplaints).
		OrderBy("complaint_id")

	selected, err := xpgx.Selectx[domain.Complaint](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	for _, c := range selected {
		warnUnknownStatus(ctx, "postgres", c)
	}

	return selected, nil
}

func (s *store) Close() error {
	s.pool.Close()
	return nil
}
