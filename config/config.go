// Package config holds the runtime settings of the directory: which store
// backend to use and how to reach it. Values are resolved in three stages,
// later ones overriding earlier ones: built-in defaults, then a JSON file
// (-c/-config), then command-line flags.
package config

// Backend names a store implementation.
type Backend string

const (
	// BackendSQLite keeps records in a local SQLite database.
	BackendSQLite Backend = "sqlite"
	// BackendPostgres keeps records in a Postgres database.
	BackendPostgres Backend = "postgres"
	// BackendFile keeps the serialized collection in a local file.
	BackendFile Backend = "file"
	// BackendS3 keeps the serialized collection in an S3 object.
	BackendS3 Backend = "s3"
)

// Config selects and parameterizes the store backend.
type Config struct {
	// Backend picks the store implementation.
	Backend Backend

	// DatabaseDSN is the SQLite path or Postgres connection string,
	// depending on Backend.
	DatabaseDSN string

	// BlobPath is the collection file path for the file backend.
	BlobPath string

	// S3 settings for the s3 backend. Endpoint may point at any
	// S3-compatible service (MinIO et al.).
	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3Key             string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// LoadDefaults populates c with the out-of-the-box setup: a local SQLite
// database next to the binary, mirroring the directory's original storage.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabaseDSN = "users.db"
	c.BlobPath = "users.json"
	c.S3Region = "us-east-1"
	c.S3Key = "users.json"
}

// LoadConfig resolves the full configuration: defaults, then the JSON file
// if one was named, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
