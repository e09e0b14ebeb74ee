package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "KYC"

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddrKey, ":8080")
	v.SetDefault(constants.ViperServerCORSOriginsKey, []string{"*"})

	v.SetDefault(constants.ViperDataDirKey, ".")
	v.SetDefault(constants.ViperDataComplaintsKey, "complaints.csv")
	v.SetDefault(constants.ViperComplaintsBackendKey, constants.BackendCSV)
	v.SetDefault(constants.ViperSQLitePathKey, "complaints.db")

	v.SetDefault(constants.ViperRedisEnabledKey, false)
	v.SetDefault(constants.ViperRedisAddrKey, "localhost:6379")
	v.SetDefault(constants.ViperRedisDBKey, 0)
	v.SetDefault(constants.ViperRedisKeyKey, "kyc:complaint_id")

	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogEncodingKey, "json")
}

// Init configures the global viper instance: defaults, then the config
// file (path, or ./config.yaml when path is empty and the file exists),
// then KYC_* environment variables.
func Init(path string) error {
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("viper.ReadInConfig: %w", err)
	}

	return nil
}
