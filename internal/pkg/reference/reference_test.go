package reference

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := DefaultFiles(dir)

	writeFile(t, files.Constituencies, "constituency_id,constituency_name,state\n1,New Delhi,Delhi\n2,North-East Delhi,Delhi\n")
	writeFile(t, files.MPs, "constituency_id,mp_name,party,email\n1,Bansuri Swaraj,BJP,bs@example.org\n1,Later Entry,XYZ,\n")
	writeFile(t, files.Assembly, "vs_id,vs_name,lok_sabha_constituency\n40,New Delhi,New Delhi\n41,Jangpura,New Delhi\n")
	writeFile(t, files.Mapping, "pincode,vs_id,vs_name,locality,lok_sabha_constituency\n110014,41,Jangpura,Jangpura,\n110014,40,New Delhi,Nizamuddin,\n110001,40,New Delhi,Connaught Place,New Delhi\n")
	writeFile(t, files.MLAs, "vs_id,mla_name,party,constituency_name\n40,Parvesh Verma,BJP,New Delhi\n")

	store, err := Load(context.Background(), files)
	require.NoError(t, err)

	assert.Len(t, store.Constituencies(), 2)
	assert.Equal(t, map[string]string{"state": "Delhi"}, store.Constituencies()[0].Extra)
	assert.Len(t, store.MPs(), 2)
	assert.Len(t, store.AssemblySeats(), 2)
	assert.Len(t, store.Mappings(), 3)
	assert.Len(t, store.MLAs(), 1)
	assert.Equal(t, 2, store.DistinctPincodes())

	mp, ok := store.MPBySeat("1")
	require.True(t, ok)
	assert.Equal(t, "Bansuri Swaraj", mp.Name)
	assert.Equal(t, "bs@example.org", mp.Email)

	mla, ok := store.MLABySeat("40")
	require.True(t, ok)
	assert.Equal(t, "Parvesh Verma", mla.Name)
	assert.Equal(t, map[string]string{"constituency_name": "New Delhi"}, mla.Extra)

	vs, ok := store.AssemblySeat("41")
	require.True(t, ok)
	assert.Equal(t, "New Delhi", vs.ParliamentaryName)

	rows := store.MappingsForPincode("110014")
	require.Len(t, rows, 2)
	assert.Equal(t, "41", rows[0].VSID)
	assert.Equal(t, "Nizamuddin", rows[1].Locality)
}

func TestLoadMissingFilesYieldEmptyTables(t *testing.T) {
	store, err := Load(context.Background(), DefaultFiles(t.TempDir()))
	require.NoError(t, err)

	assert.Empty(t, store.Constituencies())
	assert.Empty(t, store.Mappings())
	assert.Empty(t, store.MappingsForPincode("110001"))
	assert.Zero(t, store.DistinctPincodes())
}

func TestLoadRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		file     func(Files) string
		content  string
		contains string
	}{
		{
			name:     "short pincode",
			file:     func(f Files) string { return f.Mapping },
			content:  "pincode,vs_id\n110001,40\n11001,41\n",
			contains: "line 3",
		},
		{
			name:     "mapping without seat",
			file:     func(f Files) string { return f.Mapping },
			content:  "pincode,vs_id\n110001,\n",
			contains: "missing vs_id",
		},
		{
			name:     "constituency without name",
			file:     func(f Files) string { return f.Constituencies },
			content:  "constituency_id,constituency_name\n1,\n",
			contains: "missing constituency_name",
		},
		{
			name:     "duplicate assembly seat",
			file:     func(f Files) string { return f.Assembly },
			content:  "vs_id,vs_name\n40,New Delhi\n40,Again\n",
			contains: "duplicate vs_id",
		},
		{
			name:     "mla without seat",
			file:     func(f Files) string { return f.MLAs },
			content:  "vs_id,mla_name\n,Nobody\n",
			contains: "missing vs_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := DefaultFiles(t.TempDir())
			writeFile(t, tt.file(files), tt.content)

			_, err := Load(context.Background(), files)
			require.Error(t, err)
			assert.ErrorIs(t, err, constants.ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNewFirstRepresentativeWins(t *testing.T) {
	store, err := New(nil, []*domain.Representative{
		{SeatID: "4", Name: "First"},
		{SeatID: "4", Name: "Second"},
	}, nil, nil, nil)
	require.NoError(t, err)

	mp, ok := store.MPBySeat("4")
	require.True(t, ok)
	assert.Equal(t, "First", mp.Name)

	_, ok = store.MPBySeat("5")
	assert.False(t, ok)
}

func TestDefaultFiles(t *testing.T) {
	files := DefaultFiles("data")
	assert.Equal(t, filepath.Join("data", "constituencies.csv"), files.Constituencies)
	assert.Equal(t, filepath.Join("data", "vidhan_sabha_constituency_mapping.csv"), files.Mapping)
}
