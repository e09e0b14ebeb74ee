package resolver

import (
	"fmt"
	"strings"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/reference"
	"github.com/ougirez/constituency/internal/pkg/utils"
)

// lokSabhaAliases maps spellings found in the source tables onto the
// constituency names used by the parliamentary table.
var lokSabhaAliases = map[string]string{
	"North East Delhi": "North-East Delhi",
	"North West Delhi": "North-West Delhi",
	"South East Delhi": "East Delhi",
}

// Normalize returns the canonical spelling of a parliamentary constituency
// name. Unknown names are returned trimmed; blank input yields "".
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := lokSabhaAliases[name]; ok {
		return canonical
	}
	return name
}

// Resolver answers pincode questions over an immutable reference store.
type Resolver struct {
	ref    *reference.Store
	byName map[string]*domain.ParliamentaryConstituency
}

// New indexes the parliamentary table by normalized name. Two rows that
// normalize to the same name are rejected.
func New(ref *reference.Store) (*Resolver, error) {
	byName := make(map[string]*domain.ParliamentaryConstituency, len(ref.Constituencies()))
	for _, ls := range ref.Constituencies() {
		name := Normalize(ls.Name)
		if prev, ok := byName[name]; ok {
			return nil, fmt.Errorf("%w: constituencies %s and %s both normalize to %q",
				constants.ErrMalformedRecord, prev.ID, ls.ID, name)
		}
		byName[name] = ls
	}

	return &Resolver{ref: ref, byName: byName}, nil
}

// Reference exposes the underlying tables.
func (r *Resolver) Reference() *reference.Store {
	return r.ref
}

func (r *Resolver) ConstituencyByName(name string) (*domain.ParliamentaryConstituency, bool) {
	name = Normalize(name)
	if name == "" {
		return nil, false
	}
	ls, ok := r.byName[name]
	return ls, ok
}

func (r *Resolver) RepresentativeByConstituency(ls *domain.ParliamentaryConstituency) (*domain.Representative, bool) {
	if ls == nil {
		return nil, false
	}
	return r.ref.MPBySeat(ls.ID)
}

func (r *Resolver) AssemblySeatByID(id string) (*domain.AssemblyConstituency, bool) {
	return r.ref.AssemblySeat(id)
}

func (r *Resolver) RepresentativeByAssemblySeat(id string) (*domain.Representative, bool) {
	return r.ref.MLABySeat(id)
}

// OptionsForPincode returns one mapping row per assembly seat covering
// pincode, keeping the first row of every seat in table order.
func (r *Resolver) OptionsForPincode(pincode string) []*domain.PincodeMapping {
	rows := r.ref.MappingsForPincode(pincode)
	seen := make(map[string]struct{}, len(rows))
	options := make([]*domain.PincodeMapping, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.VSID]; ok {
			continue
		}
		seen[row.VSID] = struct{}{}
		options = append(options, row)
	}
	return options
}

// Choose validates pincode and picks the mapping row for seatID. When the
// pincode spans several seats and seatID is empty, it returns the options
// and a nil target.
func (r *Resolver) Choose(pincode, seatID string) (target *domain.PincodeMapping, options []*domain.PincodeMapping, err error) {
	if !utils.IsPincode(pincode) {
		return nil, nil, constants.ErrInvalidPincode
	}

	options = r.OptionsForPincode(pincode)
	if len(options) == 0 {
		return nil, nil, fmt.Errorf("%w %s", constants.ErrPincodeNotFound, pincode)
	}

	if seatID == "" {
		if len(options) > 1 {
			return nil, options, nil
		}
		return options[0], options, nil
	}

	for _, option := range options {
		if option.VSID == seatID {
			return option, options, nil
		}
	}

	return nil, options, fmt.Errorf("%w: vs_id %s, pincode %s", constants.ErrInvalidSeatChoice, seatID, pincode)
}

// Resolve runs the pincode -> assembly seat -> parliamentary seat chain.
func (r *Resolver) Resolve(pincode, seatID string) (*domain.SearchResult, error) {
	target, options, err := r.Choose(pincode, seatID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &domain.SearchResult{Pincode: pincode, ChooseSeat: true, Options: options}, nil
	}

	res := &domain.Resolution{
		Pincode:  pincode,
		Locality: target.Locality,
		VSID:     target.VSID,
		VSName:   target.VSName,
	}

	if vs, ok := r.AssemblySeatByID(target.VSID); ok {
		res.VSDetails = vs
		if res.VSName == "" {
			res.VSName = vs.Name
		}
	}
	if mla, ok := r.RepresentativeByAssemblySeat(target.VSID); ok {
		res.MLA = mla
	}

	lsName := target.ParliamentaryName
	if lsName == "" && res.VSDetails != nil {
		lsName = res.VSDetails.ParliamentaryName
	}
	if ls, ok := r.ConstituencyByName(lsName); ok {
		res.LSName = ls.Name
		res.LSDetails = ls
		if mp, ok := r.RepresentativeByConstituency(ls); ok {
			res.MP = mp
		}
	}

	return &domain.SearchResult{Pincode: pincode, Resolution: res}, nil
}
