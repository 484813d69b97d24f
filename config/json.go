package config

import (
	"encoding/json"
	"os"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/flagx"
)

// JsonConfig is the DTO for JSON unmarshalling. Absent fields keep the
// value from the previous stage, so a config file can set just the backend.
type JsonConfig struct {
	Backend           *string `json:"backend"`
	DatabaseDSN       *string `json:"database_dsn"`
	BlobPath          *string `json:"blob_path"`
	S3Endpoint        *string `json:"s3_endpoint"`
	S3Region          *string `json:"s3_region"`
	S3Bucket          *string `json:"s3_bucket"`
	S3Key             *string `json:"s3_key"`
	S3AccessKeyID     *string `json:"s3_access_key_id"`
	S3SecretAccessKey *string `json:"s3_secret_access_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag, no overlay. Read or decode failures panic: a named but broken
// config file is a deployment mistake that should not be glossed over.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != nil {
		cfg.Backend = Backend(*jc.Backend)
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.BlobPath != nil {
		cfg.BlobPath = *jc.BlobPath
	}
	if jc.S3Endpoint != nil {
		cfg.S3Endpoint = *jc.S3Endpoint
	}
	if jc.S3Region != nil {
		cfg.S3Region = *jc.S3Region
	}
	if jc.S3Bucket != nil {
		cfg.S3Bucket = *jc.S3Bucket
	}
	if jc.S3Key != nil {
		cfg.S3Key = *jc.S3Key
	}
	if jc.S3AccessKeyID != nil {
		cfg.S3AccessKeyID = *jc.S3AccessKeyID
	}
	if jc.S3SecretAccessKey != nil {
		cfg.S3SecretAccessKey = *jc.S3SecretAccessKey
	}
}
