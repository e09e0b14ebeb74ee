package store

import (
	"context"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store persists complaints. Records are only ever appended.
type Store interface {
	InsertComplaint(ctx context.Context, complaint *domain.Complaint) error
	// ListComplaints reads every complaint back from durable storage,
	// picking up edits made by other processes.
	ListComplaints(ctx context.Context) ([]*domain.Complaint, error)
	Close() error
}
