// Package reftest provides a small Delhi reference data set for tests.
package reftest

import (
	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/reference"
)

// Pincodes of the fixture, by shape.
const (
	SingleSeat      = "110006" // one row, fully enriched
	MultiSeat       = "110014" // seats 41 and 40, seat 41 listed twice
	ParentFallback  = "110053" // no override, seat parent needs normalizing
	Override        = "110001" // override differs from the seat's parent
	NormalizedAlias = "110092" // override "South East Delhi" maps to "East Delhi"
	NoParent        = "110099" // seat without parent or MLA
	UnknownSeat     = "110098" // seat id absent from the assembly table
	Unmapped        = "999999"
)

func Delhi() *reference.Store {
	store, err := reference.New(
		[]*domain.ParliamentaryConstituency{
			{ID: "1", Name: "Chandni Chowk"},
			{ID: "2", Name: "North-East Delhi"},
			{ID: "3", Name: "East Delhi"},
			{ID: "4", Name: "New Delhi"},
			{ID: "5", Name: "North-West Delhi"},
		},
		[]*domain.Representative{
			{SeatID: "1", Name: "Praveen Khandelwal", Party: "BJP"},
			{SeatID: "2", Name: "Manoj Tiwari", Party: "BJP"},
			{SeatID: "4", Name: "Bansuri Swaraj", Party: "BJP"},
			{SeatID: "4", Name: "Shadowed Entry"},
		},
		[]*domain.AssemblyConstituency{
			{ID: "1", Name: "Chandni Chowk", ParliamentaryName: "Chandni Chowk"},
			{ID: "40", Name: "New Delhi", ParliamentaryName: "New Delhi"},
			{ID: "41", Name: "Jangpura", ParliamentaryName: "New Delhi"},
			{ID: "64", Name: "Seelampur", ParliamentaryName: "North East Delhi"},
			{ID: "70", Name: "Laxmi Nagar", ParliamentaryName: "East Delhi"},
			{ID: "99", Name: "Unassigned"},
		},
		[]*domain.PincodeMapping{
			{Pincode: SingleSeat, VSID: "1", VSName: "Chandni Chowk", Locality: "Chandni Chowk"},
			{Pincode: MultiSeat, VSID: "41", VSName: "Jangpura", Locality: "Jangpura"},
			{Pincode: MultiSeat, VSID: "40", VSName: "New Delhi", Locality: "Nizamuddin"},
			{Pincode: MultiSeat, VSID: "41", VSName: "Jangpura", Locality: "Bhogal"},
			{Pincode: ParentFallback, VSID: "64", VSName: "Seelampur", Locality: "Seelampur"},
			{Pincode: Override, VSID: "40", VSName: "New Delhi", Locality: "Connaught Place", ParliamentaryName: "Chandni Chowk"},
			{Pincode: NormalizedAlias, VSID: "70", VSName: "Laxmi Nagar", Locality: "Laxmi Nagar", ParliamentaryName: "South East Delhi"},
			{Pincode: NoParent, VSID: "99", Locality: "Nowhere"},
			{Pincode: UnknownSeat, VSID: "500", VSName: "Unlisted Seat", Locality: "Outskirts"},
		},
		[]*domain.Representative{
			{SeatID: "1", Name: "Punardeep Singh Sawhney", Party: "AAP"},
			{SeatID: "40", Name: "Parvesh Verma", Party: "BJP"},
			{SeatID: "41", Name: "Tarvinder Singh Marwah", Party: "BJP"},
			{SeatID: "64", Name: "Chaudhary Zubair Ahmad", Party: "AAP"},
			{SeatID: "70", Name: "Abhay Verma", Party: "BJP"},
		},
	)
	if err != nil {
		panic(err)
	}
	return store
}
