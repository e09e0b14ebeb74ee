package reference

import (
	"context"
	"fmt"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/utils"
)

var (
	representativeNameColumns  = []string{"name", "mp_name", "mla_name", "representative_name"}
	representativeEmailColumns = []string{"email", "email_id"}
	representativePhoneColumns = []string{"phone", "contact", "phone_number"}
)

func loadTable[T any](ctx context.Context, path string, parse func(utils.Row) (T, error)) ([]T, error) {
	_, rows, exists, err := utils.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("utils.ReadCSV: %w", err)
	}
	if !exists {
		logger.Warnf(ctx, "reference table %s not found, using an empty table", path)
		return nil, nil
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record, err := parse(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, row.Line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func required(row utils.Row, column string) (string, error) {
	v := row.Get(column)
	if v == "" {
		return "", fmt.Errorf("%w: missing %s", constants.ErrMalformedRecord, column)
	}
	return v, nil
}

func parseConstituency(row utils.Row) (*domain.ParliamentaryConstituency, error) {
	id, err := required(row, "constituency_id")
	if err != nil {
		return nil, err
	}
	name, err := required(row, "constituency_name")
	if err != nil {
		return nil, err
	}

	return &domain.ParliamentaryConstituency{
		ID:    id,
		Name:  name,
		Extra: row.Extra("constituency_id", "constituency_name"),
	}, nil
}

func parseAssembly(row utils.Row) (*domain.AssemblyConstituency, error) {
	id, err := required(row, "vs_id")
	if err != nil {
		return nil, err
	}

	return &domain.AssemblyConstituency{
		ID:                id,
		Name:              row.Get("vs_name", "constituency_name"),
		ParliamentaryName: row.Get("lok_sabha_constituency"),
		Extra:             row.Extra("vs_id", "vs_name", "constituency_name", "lok_sabha_constituency"),
	}, nil
}

func parseMapping(row utils.Row) (*domain.PincodeMapping, error) {
	pincode, err := required(row, "pincode")
	if err != nil {
		return nil, err
	}
	if !utils.IsPincode(pincode) {
		return nil, fmt.Errorf("%w: pincode %q is not 6 digits", constants.ErrMalformedRecord, pincode)
	}
	vsID, err := required(row, "vs_id")
	if err != nil {
		return nil, err
	}

	return &domain.PincodeMapping{
		Pincode:           pincode,
		VSID:              vsID,
		VSName:            row.Get("vs_name"),
		Locality:          row.Get("locality"),
		ParliamentaryName: row.Get("lok_sabha_constituency"),
	}, nil
}

func parseRepresentative(seatColumn string) func(utils.Row) (*domain.Representative, error) {
	known := append([]string{seatColumn, "party"}, representativeNameColumns...)
	known = append(known, representativeEmailColumns...)
	known = append(known, representativePhoneColumns...)

	return func(row utils.Row) (*domain.Representative, error) {
		seatID, err := required(row, seatColumn)
		if err != nil {
			return nil, err
		}

		return &domain.Representative{
			SeatID: seatID,
			Name:   row.Get(representativeNameColumns...),
			Party:  row.Get("party"),
			Email:  row.Get(representativeEmailColumns...),
			Phone:  row.Get(representativePhoneColumns...),
			Extra:  row.Extra(known...),
		}, nil
	}
}
