package dto

import (
	"strings"

	"github.com/ougirez/constituency/internal/domain"
)

type SearchRequest struct {
	Pincode string `json:"pincode" form:"pincode" query:"pincode"`
	VSID    string `json:"vs_id" form:"vs_id" query:"vs_id"`
}

func (r *SearchRequest) Normalize() {
	r.Pincode = strings.TrimSpace(r.Pincode)
	r.VSID = strings.TrimSpace(r.VSID)
}

// FileComplaintRequest is the intake form. Field order is the order in
// which validation failures are reported.
type FileComplaintRequest struct {
	Pincode     string `json:"pincode" form:"pincode" validate:"pincode"`
	Name        string `json:"name" form:"name" validate:"required"`
	Email       string `json:"email" form:"email" validate:"contains=@"`
	Phone       string `json:"phone" form:"phone"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description" validate:"required"`
	VSID        string `json:"vs_id" form:"vs_id"`
}

func (r *FileComplaintRequest) Normalize() {
	r.Pincode = strings.TrimSpace(r.Pincode)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	r.VSID = strings.TrimSpace(r.VSID)
}

// FileComplaintResult carries the new complaint id, or the seat options
// together with the submitted form when the pincode is ambiguous.
type FileComplaintResult struct {
	ComplaintID int64                    `json:"complaint_id,omitempty"`
	ChooseSeat  bool                     `json:"choose_seat"`
	Options     []*domain.PincodeMapping `json:"options,omitempty"`
	Form        *FileComplaintRequest    `json:"form,omitempty"`
}
