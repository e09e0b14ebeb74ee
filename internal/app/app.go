package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/pkg/reference"
	"github.com/ougirez/constituency/internal/pkg/sequence"
	"github.com/ougirez/constituency/internal/pkg/store"
	"github.com/ougirez/constituency/internal/pkg/store/xpgx"
	"github.com/ougirez/constituency/internal/service/complaint"
	"github.com/ougirez/constituency/internal/service/resolver"
	"github.com/spf13/viper"
)

const connectRetries = 5

type App struct {
	Reference  *reference.Store
	Resolver   *resolver.Resolver
	Store      store.Store
	Sequence   sequence.Sequence
	Complaints *complaint.Service
}

// Initialize loads the reference tables and opens the configured complaint
// backend. Configuration is read from the global viper instance.
func Initialize(ctx context.Context) (*App, error) {
	dir := viper.GetString(constants.ViperDataDirKey)

	ref, err := reference.Load(ctx, referenceFiles(dir))
	if err != nil {
		return nil, fmt.Errorf("reference.Load: %w", err)
	}

	res, err := resolver.New(ref)
	if err != nil {
		return nil, fmt.Errorf("resolver.New: %w", err)
	}

	st, err := openStore(ctx, dir)
	if err != nil {
		return nil, err
	}

	app := &App{Reference: ref, Resolver: res, Store: st}

	opts := make([]complaint.Option, 0, 1)
	if viper.GetBool(constants.ViperRedisEnabledKey) {
		app.Sequence, err = sequence.NewRedis(ctx, sequence.RedisConfig{
			Addr:     viper.GetString(constants.ViperRedisAddrKey),
			Password: viper.GetString(constants.ViperRedisPasswordKey),
			DB:       viper.GetInt(constants.ViperRedisDBKey),
			Key:      viper.GetString(constants.ViperRedisKeyKey),
		}, connectRetries)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("sequence.NewRedis: %w", err)
		}
		opts = append(opts, complaint.WithSequence(app.Sequence))
	} else {
		logger.Infof(ctx, "redis disabled, complaint ids follow the record count")
	}

	app.Complaints, err = complaint.NewComplaintService(ctx, st, res, opts...)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("complaint.NewComplaintService: %w", err)
	}

	return app, nil
}

func (a *App) Close() {
	ctx := context.Background()
	if a.Sequence != nil {
		if err := a.Sequence.Close(); err != nil {
			logger.Warnf(ctx, "close sequence: %s", err.Error())
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			logger.Warnf(ctx, "close store: %s", err.Error())
		}
	}
}

func referenceFiles(dir string) reference.Files {
	files := reference.DefaultFiles(dir)
	override := func(dst *string, key string) {
		if v := viper.GetString(key); v != "" {
			*dst = dataPath(dir, v)
		}
	}
	override(&files.Constituencies, constants.ViperDataConstituenciesKey)
	override(&files.MPs, constants.ViperDataMPsKey)
	override(&files.Assembly, constants.ViperDataAssemblyKey)
	override(&files.Mapping, constants.ViperDataMappingKey)
	override(&files.MLAs, constants.ViperDataMLAsKey)
	return files
}

func openStore(ctx context.Context, dir string) (store.Store, error) {
	backend := viper.GetString(constants.ViperComplaintsBackendKey)
	logger.Infof(ctx, "complaints backend: %s", backend)

	switch backend {
	case constants.BackendCSV, "":
		return store.NewCSVStore(ctx, dataPath(dir, viper.GetString(constants.ViperDataComplaintsKey)))
	case constants.BackendMemory:
		return store.NewMemoryStore(), nil
	case constants.BackendSQLite:
		return store.NewSQLiteStore(ctx, dataPath(dir, viper.GetString(constants.ViperSQLitePathKey)))
	case constants.BackendPostgres:
		pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperPostgresDSNKey), connectRetries)
		if err != nil {
			return nil, fmt.Errorf("xpgx.NewPool: %w", err)
		}
		st, err := store.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return st, nil
	}

	return nil, fmt.Errorf("unknown complaints backend %q", backend)
}

// dataPath resolves relative file names against the data directory.
func dataPath(dir, name string) string {
	if name == ":memory:" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
