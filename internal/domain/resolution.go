package domain

// Resolution is the representative bundle for one pincode and assembly seat.
// Enrichment fields stay nil when the reference data has no matching record.
type Resolution struct {
	Pincode   string                     `json:"pincode"`
	Locality  string                     `json:"locality,omitempty"`
	VSID      string                     `json:"vs_id"`
	VSName    string                     `json:"vs_name,omitempty"`
	VSDetails *AssemblyConstituency      `json:"vs_details,omitempty"`
	MLA       *Representative            `json:"mla,omitempty"`
	LSName    string                     `json:"ls_name,omitempty"`
	LSDetails *ParliamentaryConstituency `json:"ls_details,omitempty"`
	MP        *Representative            `json:"mp,omitempty"`
}

// SearchResult is either a completed Resolution or, when ChooseSeat is set,
// the list of assembly seats the caller has to pick from.
type SearchResult struct {
	Pincode    string            `json:"pincode"`
	ChooseSeat bool              `json:"choose_seat"`
	Options    []*PincodeMapping `json:"options,omitempty"`
	Resolution *Resolution       `json:"resolution,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Field   string `json:"field,omitempty"`
}
