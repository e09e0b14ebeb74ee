package constants

const (
	ViperServerAddrKey        = "server.addr"
	ViperServerCORSOriginsKey = "server.cors_origins"

	ViperDataDirKey            = "data.dir"
	ViperDataConstituenciesKey = "data.files.constituencies"
	ViperDataMPsKey            = "data.files.mps"
	ViperDataAssemblyKey       = "data.files.assembly"
	ViperDataMappingKey        = "data.files.mapping"
	ViperDataMLAsKey           = "data.files.mlas"
	ViperDataComplaintsKey     = "data.files.complaints"
	ViperComplaintsBackendKey  = "complaints.backend"
	ViperPostgresDSNKey        = "postgres.dsn"
	ViperSQLitePathKey         = "sqlite.path"
	ViperRedisEnabledKey       = "redis.enabled"
	ViperRedisAddrKey          = "redis.addr"
	ViperRedisPasswordKey      = "redis.password"
	ViperRedisDBKey            = "redis.db"
	ViperRedisKeyKey           = "redis.key"
	ViperLogLevelKey           = "log.level"
	ViperLogEncodingKey        = "log.encoding"
)

const (
	BackendCSV      = "csv"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// SubmittedDateLayout is the on-disk format of complaint timestamps.
const SubmittedDateLayout = "2006-01-02 15:04:05"

// DefaultCategory is reported for complaints filed without a category.
const DefaultCategory = "Other"

const HeaderRequestID = "X-Request-Id"
