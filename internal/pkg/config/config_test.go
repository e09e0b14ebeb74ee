package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	v := viper.New()

	require.NoError(t, load(v, ""))
	assert.Equal(t, ":8080", v.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, constants.BackendCSV, v.GetString(constants.ViperComplaintsBackendKey))
	assert.Equal(t, "complaints.csv", v.GetString(constants.ViperDataComplaintsKey))
	assert.False(t, v.GetBool(constants.ViperRedisEnabledKey))
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kyc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
data:
  dir: /srv/data
complaints:
  backend: sqlite
`), 0o644))

	t.Setenv("KYC_COMPLAINTS_BACKEND", "postgres")
	t.Setenv("KYC_REDIS_ENABLED", "true")

	v := viper.New()
	require.NoError(t, load(v, path))
	assert.Equal(t, ":9090", v.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, "/srv/data", v.GetString(constants.ViperDataDirKey))
	assert.Equal(t, "postgres", v.GetString(constants.ViperComplaintsBackendKey))
	assert.True(t, v.GetBool(constants.ViperRedisEnabledKey))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	assert.Error(t, load(v, filepath.Join(t.TempDir(), "absent.yaml")))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
