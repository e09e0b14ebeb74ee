package domain

// ParliamentaryConstituency is a Lok Sabha seat.
type ParliamentaryConstituency struct {
	ID    string            `json:"constituency_id"`
	Name  string            `json:"constituency_name"`
	Extra map[string]string `json:"extra,omitempty"`
}

// AssemblyConstituency is a Vidhan Sabha seat nested in a parliamentary one.
type AssemblyConstituency struct {
	ID                string            `json:"vs_id"`
	Name              string            `json:"vs_name"`
	ParliamentaryName string            `json:"lok_sabha_constituency,omitempty"`
	Extra             map[string]string `json:"extra,omitempty"`
}

// Representative is an elected member (MP or MLA) for one seat.
type Representative struct {
	SeatID string            `json:"seat_id"`
	Name   string            `json:"name,omitempty"`
	Party  string            `json:"party,omitempty"`
	Email  string            `json:"email,omitempty"`
	Phone  string            `json:"phone,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// PincodeMapping links a pincode locality to the assembly seat covering it.
// ParliamentaryName, when set, overrides the seat's own parent constituency.
type PincodeMapping struct {
	Pincode           string `json:"pincode"`
	VSID              string `json:"vs_id"`
	VSName            string `json:"vs_name,omitempty"`
	Locality          string `json:"locality,omitempty"`
	ParliamentaryName string `json:"lok_sabha_constituency,omitempty"`
}
