package domain

import "time"

type ComplaintStatus string

const (
	ComplaintStatusNew        ComplaintStatus = "NEW"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusNew, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

type Complaint struct {
	ID               int64           `db:"complaint_id" json:"complaint_id"`
	Pincode          string          `db:"pincode" json:"pincode"`
	VSID             string          `db:"vs_id" json:"vs_id"`
	ComplainantName  string          `db:"complainant_name" json:"complainant_name"`
	ComplainantEmail string          `db:"complainant_email" json:"complainant_email"`
	ComplainantPhone string          `db:"complainant_phone" json:"complainant_phone,omitempty"`
	Description      string          `db:"complaint_description" json:"complaint_description"`
	Category         string          `db:"complaint_category" json:"complaint_category,omitempty"`
	Status           ComplaintStatus `db:"complaint_status" json:"complaint_status"`
	SubmittedAt      time.Time       `db:"submitted_date" json:"submitted_date"`
}

type Stats struct {
	TotalLokSabha         int            `json:"total_lok_sabha"`
	TotalVidhanSabha      int            `json:"total_vidhan_sabha"`
	TotalPincodes         int            `json:"total_pincodes"`
	DistinctPincodes      int            `json:"distinct_pincodes"`
	TotalComplaints       int            `json:"total_complaints"`
	NewComplaints         int            `json:"new_complaints"`
	InProgress            int            `json:"in_progress"`
	ResolvedComplaints    int            `json:"resolved_complaints"`
	ResolutionRate        float64        `json:"resolution_rate"`
	ResolutionRatePercent float64        `json:"resolution_rate_percent"`
	Categories            map[string]int `json:"categories"`
}
