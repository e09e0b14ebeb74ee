package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
)

const tableComplaints = "complaints"

// complaintColumns is also the fixed column order of the complaints file.
var complaintColumns = []string{
	"complaint_id",
	"pincode",
	"vs_id",
	"complainant_name",
	"complainant_email",
	"complainant_phone",
	"complaint_description",
	"complaint_category",
	"complaint_status",
	"submitted_date",
}

// ComplaintColumns returns a copy of the complaint column order.
func ComplaintColumns() []string {
	return append([]string(nil), complaintColumns...)
}

var mapping = map[error]error{
	pgx.ErrNoRows: constants.ErrDBNotFound,
	sql.ErrNoRows: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func complaintValues(c *domain.Complaint) []interface{} {
	return []interface{}{
		c.ID,
		c.Pincode,
		c.VSID,
		c.ComplainantName,
		c.ComplainantEmail,
		c.ComplainantPhone,
		c.Description,
		c.Category,
		string(c.Status),
		c.SubmittedAt,
	}
}

func complaintRecord(c *domain.Complaint) []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.Pincode,
		c.VSID,
		c.ComplainantName,
		c.ComplainantEmail,
		c.ComplainantPhone,
		c.Description,
		c.Category,
		string(c.Status),
		formatSubmitted(c),
	}
}

func formatSubmitted(c *domain.Complaint) string {
	if c.SubmittedAt.IsZero() {
		return ""
	}
	return c.SubmittedAt.Format(constants.SubmittedDateLayout)
}

func copyComplaints(src []*domain.Complaint) []*domain.Complaint {
	dst := make([]*domain.Complaint, 0, len(src))
	for _, c := range src {
		cp := *c
		dst = append(dst, &cp)
	}
	return dst
}

// warnUnknownStatus logs statuses set outside the service that are none of
// the known ones. Such complaints are kept as stored.
func warnUnknownStatus(ctx context.Context, source string, c *domain.Complaint) {
	if !c.Status.Valid() {
		logger.Warnf(ctx, "%s: complaint %d has unknown status %q", source, c.ID, c.Status)
	}
}
