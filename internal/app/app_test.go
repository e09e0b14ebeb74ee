package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/constituency/internal/domain/dto"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "constituencies.csv", "constituency_id,constituency_name\n1,Chandni Chowk\n")
	writeFile(t, dir, "mps.csv", "constituency_id,mp_name,party\n1,Praveen Khandelwal,BJP\n")
	writeFile(t, dir, "vidhan_sabha_constituencies.csv", "vs_id,vs_name,lok_sabha_constituency\n20,Chandni Chowk,Chandni Chowk\n")
	writeFile(t, dir, "vidhan_sabha_constituency_mapping.csv", "pincode,vs_id,vs_name,locality\n110006,20,Chandni Chowk,Chandni Chowk\n")

	tests := []struct {
		backend string
		check   func(t *testing.T)
	}{
		{constants.BackendCSV, func(t *testing.T) {
			_, err := os.Stat(filepath.Join(dir, "complaints.csv"))
			assert.NoError(t, err)
		}},
		{constants.BackendSQLite, func(t *testing.T) {
			_, err := os.Stat(filepath.Join(dir, "complaints.db"))
			assert.NoError(t, err)
		}},
		{constants.BackendMemory, func(t *testing.T) {}},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set(constants.ViperDataDirKey, dir)
			viper.Set(constants.ViperDataComplaintsKey, "complaints.csv")
			viper.Set(constants.ViperSQLitePathKey, "complaints.db")
			viper.Set(constants.ViperComplaintsBackendKey, tt.backend)

			ctx := context.Background()
			a, err := Initialize(ctx)
			require.NoError(t, err)
			defer a.Close()

			res, err := a.Complaints.FileComplaint(ctx, &dto.FileComplaintRequest{
				Pincode:     "110006",
				Name:        "Asha",
				Email:       "asha@example.com",
				Description: "Garbage not collected",
			})
			require.NoError(t, err)
			assert.Positive(t, res.ComplaintID)
			tt.check(t)
		})
	}
}

func TestInitialize_UnknownBackend(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(constants.ViperDataDirKey, t.TempDir())
	viper.Set(constants.ViperComplaintsBackendKey, "mongo")

	_, err := Initialize(context.Background())
	assert.ErrorContains(t, err, "mongo")
}

func TestDataPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "c.csv"), dataPath("data", "c.csv"))
	assert.Equal(t, "/abs/c.csv", dataPath("data", "/abs/c.csv"))
	assert.Equal(t, ":memory:", dataPath("data", ":memory:"))
}
