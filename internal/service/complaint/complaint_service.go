package complaint

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/domain/dto"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/sequence"
	"github.com/ougirez/constituency/internal/pkg/store"
	"github.com/ougirez/constituency/internal/pkg/utils"
	"github.com/ougirez/constituency/internal/pkg/validation"
	"github.com/ougirez/constituency/internal/service/resolver"
)

type Service struct {
	store    store.Store
	resolver *resolver.Resolver
	seq      sequence.Sequence
	validate *validator.Validate
	now      func() time.Time

	// mu serializes id assignment with the append and guards complaints.
	mu         sync.Mutex
	complaints []*domain.Complaint
}

type Option func(*Service)

// WithSequence replaces the default count+1 numbering.
func WithSequence(seq sequence.Sequence) Option {
	return func(s *Service) { s.seq = seq }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewComplaintService loads the existing complaints from store.
func NewComplaintService(ctx context.Context, store store.Store, resolver *resolver.Resolver, opts ...Option) (*Service, error) {
	s := &Service{
		store:    store,
		resolver: resolver,
		seq:      sequence.NewCount(),
		validate: validation.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	complaints, err := store.ListComplaints(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListComplaints: %w", err)
	}
	s.complaints = complaints
	logger.Infof(ctx, "loaded %d complaints", len(complaints))

	return s, nil
}

// Search resolves a pincode (and optional seat choice) to its representatives.
func (s *Service) Search(_ context.Context, req *dto.SearchRequest) (*domain.SearchResult, error) {
	req.Normalize()
	return s.resolver.Resolve(req.Pincode, req.VSID)
}

// Options lists the distinct assembly seats covering a pincode.
func (s *Service) Options(_ context.Context, pincode string) ([]*domain.PincodeMapping, error) {
	pincode = strings.TrimSpace(pincode)
	if !utils.IsPincode(pincode) {
		return nil, constants.ErrInvalidPincode
	}

	options := s.resolver.OptionsForPincode(pincode)
	if len(options) == 0 {
		return nil, fmt.Errorf("%w %s", constants.ErrPincodeNotFound, pincode)
	}
	return options, nil
}

// FileComplaint validates and records a complaint. When the pincode spans
// several seats and none was chosen, nothing is stored and the result
// carries the options along with the submitted form.
func (s *Service) FileComplaint(ctx context.Context, req *dto.FileComplaintRequest) (*dto.FileComplaintResult, error) {
	req.Normalize()
	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	target, options, err := s.resolver.Choose(req.Pincode, req.VSID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &dto.FileComplaintResult{ChooseSeat: true, Options: options, Form: req}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshLocked(ctx)

	id, err := s.seq.Next(ctx, len(s.complaints))
	if err != nil {
		return nil, fmt.Errorf("seq.Next: %w", err)
	}

	complaint := &domain.Complaint{
		ID:               id,
		Pincode:          req.Pincode,
		VSID:             target.VSID,
		ComplainantName:  req.Name,
		ComplainantEmail: req.Email,
		ComplainantPhone: req.Phone,
		Description:      req.Description,
		Category:         req.Category,
		Status:           domain.ComplaintStatusNew,
		SubmittedAt:      s.now().Local().Truncate(time.Second),
	}
	if err := s.store.InsertComplaint(ctx, complaint); err != nil {
		return nil, fmt.Errorf("store.InsertComplaint: %w", err)
	}
	s.complaints = append(s.complaints, complaint)

	logger.Infof(ctx, "filed complaint %d for pincode %s seat %s", id, complaint.Pincode, complaint.VSID)

	return &dto.FileComplaintResult{ComplaintID: id}, nil
}

// ComplaintStatus looks a complaint up by its decimal id.
func (s *Service) ComplaintStatus(_ context.Context, id string) (*domain.Complaint, error) {
	id = strings.TrimSpace(id)
	if !utils.IsDigits(id) {
		return nil, constants.NewValidationError("complaint_id", "please enter a valid complaint id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.complaints {
		if strconv.FormatInt(c.ID, 10) == id {
			cp := *c
			return &cp, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", constants.ErrNotFound, id)
}

// Stats reloads complaints from storage and summarizes them together with
// the reference table sizes.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	s.mu.Lock()
	s.refreshLocked(ctx)
	complaints := s.complaints
	s.mu.Unlock()

	return summarize(s.resolver.Reference(), complaints), nil
}

// refreshLocked replaces the cached complaints with the stored ones. A
// failed reload keeps the cache.
func (s *Service) refreshLocked(ctx context.Context) {
	complaints, err := s.store.ListComplaints(ctx)
	if err != nil {
		logger.Warnf(ctx, "reload complaints, using cached list: %s", err.Error())
		return
	}
	s.complaints = complaints
}
