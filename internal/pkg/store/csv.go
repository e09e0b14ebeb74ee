package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/utils"
)

type csvStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore persists complaints in a single CSV file, creating it with
// the header row when absent. Every insert rewrites the whole file.
func NewCSVStore(ctx context.Context, path string) (Store, error) {
	s := &csvStore{path: path}

	_, _, exists, err := utils.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("utils.ReadCSV: %w", err)
	}
	if !exists {
		if err := utils.WriteCSV(path, complaintColumns, nil); err != nil {
			return nil, fmt.Errorf("utils.WriteCSV: %w", err)
		}
		logger.Infof(ctx, "created empty complaints file %s", path)
	}

	return s, nil
}

func (s *csvStore) InsertComplaint(ctx context.Context, complaint *domain.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-read so that edits made by other processes survive the rewrite.
	complaints, err := s.read(ctx)
	if err != nil {
		return err
	}
	for _, c := range complaints {
		if c.ID == complaint.ID {
			return fmt.Errorf("complaint %d already exists in %s", complaint.ID, s.path)
		}
	}
	complaints = append(complaints, complaint)

	records := make([][]string, 0, len(complaints))
	for _, c := range complaints {
		records = append(records, complaintRecord(c))
	}
	if err := utils.WriteCSV(s.path, complaintColumns, records); err != nil {
		logger.Errorf(ctx, "rewrite %s: %s", s.path, err.Error())
		return fmt.Errorf("utils.WriteCSV: %w", err)
	}

	return nil
}

func (s *csvStore) ListComplaints(ctx context.Context) ([]*domain.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

func (s *csvStore) Close() error {
	return nil
}

func (s *csvStore) read(ctx context.Context) ([]*domain.Complaint, error) {
	_, rows, _, err := utils.ReadCSV(s.path)
	if err != nil {
		return nil, fmt.Errorf("utils.ReadCSV: %w", err)
	}

	complaints := make([]*domain.Complaint, 0, len(rows))
	for _, row := range rows {
		c, err := parseComplaintRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, row.Line, err)
		}
		warnUnknownStatus(ctx, s.path, c)
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func parseComplaintRow(row utils.Row) (*domain.Complaint, error) {
	id, err := strconv.ParseInt(row.Get("complaint_id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: complaint_id %q", constants.ErrMalformedRecord, row.Get("complaint_id"))
	}

	var submitted time.Time
	if v := row.Get("submitted_date"); v != "" {
		submitted, err = time.ParseInLocation(constants.SubmittedDateLayout, v, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: submitted_date %q", constants.ErrMalformedRecord, v)
		}
	}

	return &domain.Complaint{
		ID:               id,
		Pincode:          row.Fields["pincode"],
		VSID:             row.Fields["vs_id"],
		ComplainantName:  row.Fields["complainant_name"],
		ComplainantEmail: row.Fields["complainant_email"],
		ComplainantPhone: row.Fields["complainant_phone"],
		Description:      row.Fields["complaint_description"],
		Category:         row.Fields["complaint_category"],
		Status:           domain.ComplaintStatus(row.Fields["complaint_status"]),
		SubmittedAt:      submitted,
	}, nil
}
