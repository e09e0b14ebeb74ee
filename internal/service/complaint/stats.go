package complaint

import (
	"strings"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/reference"
	"github.com/shopspring/decimal"
)

func summarize(ref *reference.Store, complaints []*domain.Complaint) *domain.Stats {
	stats := &domain.Stats{
		TotalLokSabha:    len(ref.Constituencies()),
		TotalVidhanSabha: len(ref.AssemblySeats()),
		TotalPincodes:    len(ref.Mappings()),
		DistinctPincodes: ref.DistinctPincodes(),
		TotalComplaints:  len(complaints),
		Categories:       make(map[string]int),
	}

	for _, c := range complaints {
		// Statuses edited outside the service may be padded or unknown;
		// unknown ones count only toward the total.
		switch domain.ComplaintStatus(strings.TrimSpace(string(c.Status))) {
		case domain.ComplaintStatusNew:
			stats.NewComplaints++
		case domain.ComplaintStatusInProgress:
			stats.InProgress++
		case domain.ComplaintStatusResolved:
			stats.ResolvedComplaints++
		}

		category := strings.TrimSpace(c.Category)
		if category == "" {
			category = constants.DefaultCategory
		}
		stats.Categories[category]++
	}

	if stats.TotalComplaints > 0 {
		rate := decimal.NewFromInt(int64(stats.ResolvedComplaints)).
			Div(decimal.NewFromInt(int64(stats.TotalComplaints)))
		stats.ResolutionRate = rate.InexactFloat64()
		stats.ResolutionRatePercent = rate.Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}

	return stats
}
