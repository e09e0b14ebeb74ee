package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complaint(id int64) *domain.Complaint {
	return &domain.Complaint{
		ID:               id,
		Pincode:          "110006",
		VSID:             "20",
		ComplainantName:  "Asha",
		ComplainantEmail: "asha@example.com",
		Description:      "Broken street light",
		Category:         "Electricity",
		Status:           domain.ComplaintStatusNew,
		SubmittedAt:      time.Date(2025, 3, 4, 10, 11, 12, 0, time.Local),
	}
}

type storeCase struct {
	name string
	open func(t *testing.T) Store
}

func backends() []storeCase {
	return []storeCase{
		{
			name: "memory",
			open: func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			name: "csv",
			open: func(t *testing.T) Store {
				s, err := NewCSVStore(context.Background(), filepath.Join(t.TempDir(), "complaints.csv"))
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) Store {
				s, err := NewSQLiteStore(context.Background(), ":memory:")
				require.NoError(t, err)
				return s
			},
		},
	}
}

func TestStore_InsertAndList(t *testing.T) {
	for _, tc := range backends() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s := tc.open(t)
			defer s.Close()

			list, err := s.ListComplaints(ctx)
			require.NoError(t, err)
			assert.Empty(t, list)

			require.NoError(t, s.InsertComplaint(ctx, complaint(1)))
			second := complaint(2)
			second.Category = ""
			second.ComplainantPhone = "9999999999"
			require.NoError(t, s.InsertComplaint(ctx, second))

			list, err = s.ListComplaints(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, int64(1), list[0].ID)
			assert.Equal(t, "Electricity", list[0].Category)
			assert.Equal(t, int64(2), list[1].ID)
			assert.Equal(t, "", list[1].Category)
			assert.Equal(t, "9999999999", list[1].ComplainantPhone)
			assert.Equal(t, domain.ComplaintStatusNew, list[1].Status)
			assert.True(t, complaint(1).SubmittedAt.Equal(list[0].SubmittedAt))
		})
	}
}

func TestStore_DuplicateID(t *testing.T) {
	for _, tc := range backends() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s := tc.open(t)
			defer s.Close()

			require.NoError(t, s.InsertComplaint(ctx, complaint(1)))
			assert.Error(t, s.InsertComplaint(ctx, complaint(1)))

			list, err := s.ListComplaints(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestStore_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(complaint(1))

	list, err := s.ListComplaints(ctx)
	require.NoError(t, err)
	list[0].Status = domain.ComplaintStatusResolved

	list, err = s.ListComplaints(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ComplaintStatusNew, list[0].Status)
}

func TestCSVStore_CreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.csv")

	_, err := NewCSVStore(context.Background(), path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(complaintColumns, ",")+"\n", string(raw))
}

func TestCSVStore_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "complaints.csv")

	s, err := NewCSVStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.InsertComplaint(ctx, complaint(1)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"1,110006,20,Asha,asha@example.com,,Broken street light,Electricity,NEW,2025-03-04 10:11:12",
		lines[1])
}

func TestCSVStore_PicksUpExternalEdits(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "complaints.csv")

	s, err := NewCSVStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.InsertComplaint(ctx, complaint(1)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(raw), ",NEW,", ",RESOLVED,", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	list, err := s.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.ComplaintStatusResolved, list[0].Status)

	// The edit survives the next rewrite.
	require.NoError(t, s.InsertComplaint(ctx, complaint(2)))
	list, err = s.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ComplaintStatusResolved, list[0].Status)
}

func TestCSVStore_MalformedRows(t *testing.T) {
	header := strings.Join(complaintColumns, ",") + "\n"
	tests := []struct {
		name string
		row  string
	}{
		{"bad id", "x,110006,20,A,a@b,,d,,NEW,2025-03-04 10:11:12\n"},
		{"zero id", "0,110006,20,A,a@b,,d,,NEW,2025-03-04 10:11:12\n"},
		{"bad date", "1,110006,20,A,a@b,,d,,NEW,04/03/2025\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "complaints.csv")
			require.NoError(t, os.WriteFile(path, []byte(header+tt.row), 0o644))

			s, err := NewCSVStore(context.Background(), path)
			require.NoError(t, err)

			_, err = s.ListComplaints(context.Background())
			require.ErrorIs(t, err, constants.ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestSQLiteStore_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "complaints.db")

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.InsertComplaint(ctx, complaint(1)))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	list, err := s.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Asha", list[0].ComplainantName)
}

func TestComplaintColumns_Copy(t *testing.T) {
	cols := ComplaintColumns()
	cols[0] = "changed"
	assert.Equal(t, "complaint_id", complaintColumns[0])
}

func TestCSVStore_KeepsEditedRowsIntact(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "complaints.csv")

	s, err := NewCSVStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.InsertComplaint(ctx, complaint(1)))
	require.NoError(t, s.InsertComplaint(ctx, complaint(2)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	lines[1] = strings.Replace(lines[1], ",NEW,", ",Closed,", 1)
	lines[2] = strings.Replace(lines[2], "Broken street light", "  Broken street light ", 1)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	list, err := s.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ComplaintStatus("Closed"), list[0].Status)
	assert.Equal(t, "  Broken street light ", list[1].Description)

	require.NoError(t, s.InsertComplaint(ctx, complaint(3)))

	list, err = s.ListComplaints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.ComplaintStatus("Closed"), list[0].Status)
	assert.Equal(t, "  Broken street light ", list[1].Description)
	assert.Equal(t, "Broken street light", list[2].Description)
}

func TestStore_UnknownStatusIsKept(t *testing.T) {
	for _, tc := range backends() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s := tc.open(t)
			defer s.Close()

			closed := complaint(1)
			closed.Status = "Closed"
			require.NoError(t, s.InsertComplaint(ctx, closed))

			list, err := s.ListComplaints(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, domain.ComplaintStatus("Closed"), list[0].Status)
		})
	}
}
