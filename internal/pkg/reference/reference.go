package reference

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Files names the backing CSV file of every reference table.
type Files struct {
	Constituencies string
	MPs            string
	Assembly       string
	Mapping        string
	MLAs           string
}

// DefaultFiles returns the conventional file names inside dir.
func DefaultFiles(dir string) Files {
	return Files{
		Constituencies: filepath.Join(dir, "constituencies.csv"),
		MPs:            filepath.Join(dir, "mps.csv"),
		Assembly:       filepath.Join(dir, "vidhan_sabha_constituencies.csv"),
		Mapping:        filepath.Join(dir, "vidhan_sabha_constituency_mapping.csv"),
		MLAs:           filepath.Join(dir, "delhi_mlas_2025.csv"),
	}
}

// Store holds the reference tables. It is immutable once built and safe
// for concurrent readers.
type Store struct {
	constituencies []*domain.ParliamentaryConstituency
	mps            []*domain.Representative
	assembly       []*domain.AssemblyConstituency
	mappings       []*domain.PincodeMapping
	mlas           []*domain.Representative

	mpBySeat          map[string]*domain.Representative
	assemblyByID      map[string]*domain.AssemblyConstituency
	mlaBySeat         map[string]*domain.Representative
	mappingsByPincode map[string][]*domain.PincodeMapping
}

// Load reads all five tables concurrently. Missing files produce empty
// tables; malformed rows fail the load.
func Load(ctx context.Context, files Files) (*Store, error) {
	var (
		constituencies []*domain.ParliamentaryConstituency
		mps            []*domain.Representative
		assembly       []*domain.AssemblyConstituency
		mappings       []*domain.PincodeMapping
		mlas           []*domain.Representative
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		constituencies, err = loadTable(egCtx, files.Constituencies, parseConstituency)
		return err
	})
	eg.Go(func() (err error) {
		mps, err = loadTable(egCtx, files.MPs, parseRepresentative("constituency_id"))
		return err
	})
	eg.Go(func() (err error) {
		assembly, err = loadTable(egCtx, files.Assembly, parseAssembly)
		return err
	})
	eg.Go(func() (err error) {
		mappings, err = loadTable(egCtx, files.Mapping, parseMapping)
		return err
	})
	eg.Go(func() (err error) {
		mlas, err = loadTable(egCtx, files.MLAs, parseRepresentative("vs_id"))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	store, err := New(constituencies, mps, assembly, mappings, mlas)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "reference data loaded: %d lok sabha, %d mps, %d vidhan sabha, %d pincode rows, %d mlas",
		len(constituencies), len(mps), len(assembly), len(mappings), len(mlas))

	return store, nil
}

// New builds a Store from already typed records and indexes them.
// The first record wins whenever a key repeats in a table that allows it.
func New(
	constituencies []*domain.ParliamentaryConstituency,
	mps []*domain.Representative,
	assembly []*domain.AssemblyConstituency,
	mappings []*domain.PincodeMapping,
	mlas []*domain.Representative,
) (*Store, error) {
	s := &Store{
		constituencies:    constituencies,
		mps:               mps,
		assembly:          assembly,
		mappings:          mappings,
		mlas:              mlas,
		mpBySeat:          make(map[string]*domain.Representative, len(mps)),
		assemblyByID:      make(map[string]*domain.AssemblyConstituency, len(assembly)),
		mlaBySeat:         make(map[string]*domain.Representative, len(mlas)),
		mappingsByPincode: make(map[string][]*domain.PincodeMapping),
	}

	for _, vs := range assembly {
		if _, ok := s.assemblyByID[vs.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate vs_id %q", constants.ErrMalformedRecord, vs.ID)
		}
		s.assemblyByID[vs.ID] = vs
	}
	for _, m := range mappings {
		if !utils.IsPincode(m.Pincode) {
			return nil, fmt.Errorf("%w: pincode %q is not 6 digits", constants.ErrMalformedRecord, m.Pincode)
		}
		s.mappingsByPincode[m.Pincode] = append(s.mappingsByPincode[m.Pincode], m)
	}
	for _, mp := range mps {
		if _, ok := s.mpBySeat[mp.SeatID]; !ok {
			s.mpBySeat[mp.SeatID] = mp
		}
	}
	for _, mla := range mlas {
		if _, ok := s.mlaBySeat[mla.SeatID]; !ok {
			s.mlaBySeat[mla.SeatID] = mla
		}
	}

	return s, nil
}

func (s *Store) Constituencies() []*domain.ParliamentaryConstituency {
	return s.constituencies
}

func (s *Store) MPs() []*domain.Representative {
	return s.mps
}

func (s *Store) AssemblySeats() []*domain.AssemblyConstituency {
	return s.assembly
}

func (s *Store) Mappings() []*domain.PincodeMapping {
	return s.mappings
}

func (s *Store) MLAs() []*domain.Representative {
	return s.mlas
}

// MappingsForPincode returns every mapping row of pincode in table order.
func (s *Store) MappingsForPincode(pincode string) []*domain.PincodeMapping {
	return s.mappingsByPincode[pincode]
}

// DistinctPincodes is the number of different pincodes in the mapping table.
func (s *Store) DistinctPincodes() int {
	return len(s.mappingsByPincode)
}

func (s *Store) AssemblySeat(id string) (*domain.AssemblyConstituency, bool) {
	vs, ok := s.assemblyByID[id]
	return vs, ok
}

func (s *Store) MPBySeat(constituencyID string) (*domain.Representative, bool) {
	mp, ok := s.mpBySeat[constituencyID]
	return mp, ok
}

func (s *Store) MLABySeat(vsID string) (*domain.Representative, bool) {
	mla, ok := s.mlaBySeat[vsID]
	return mla, ok
}
