package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/ougirez/constituency/internal/domain"
)

type memoryStore struct {
	mu         sync.Mutex
	complaints []*domain.Complaint
}

// NewMemoryStore keeps complaints in process memory only.
func NewMemoryStore(seed ...*domain.Complaint) Store {
	return &memoryStore{complaints: copyComplaints(seed)}
}

func (s *memoryStore) InsertComplaint(_ context.Context, complaint *domain.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.complaints {
		if c.ID == complaint.ID {
			return fmt.Errorf("complaint %d already exists", complaint.ID)
		}
	}

	cp := *complaint
	s.complaints = append(s.complaints, &cp)
	return nil
}

func (s *memoryStore) ListComplaints(_ context.Context) ([]*domain.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyComplaints(s.complaints), nil
}

func (s *memoryStore) Close() error {
	return nil
}
