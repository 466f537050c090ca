package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mantisworks/mantis-field/internal/flagx"
	"github.com/mantisworks/mantis-field/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be strings like "30s" or integer
// nanoseconds. After parsing, non-empty values are copied into the runtime
// Config.
type JsonConfig struct {
	GatewayAddr         string         `json:"gateway_addr"`
	DatabasePath        string         `json:"database_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	CallTimeout         timex.Duration `json:"call_timeout"`

	PhotoBackend string `json:"photo_backend"`

	S3 struct {
		Endpoint        string `json:"endpoint"`
		Region          string `json:"region"`
		Bucket          string `json:"bucket"`
		Prefix          string `json:"prefix"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
	} `json:"s3"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. Absent file path means no JSON stage. Zero-value JSON
// fields leave the existing Config value in place, so a partial file works.
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

	if jc.GatewayAddr != "" {
		cfg.GatewayAddr = jc.GatewayAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.CallTimeout.Duration != 0 {
		cfg.CallTimeout = time.Duration(jc.CallTimeout.Duration)
	}
	if jc.PhotoBackend != "" {
		cfg.PhotoBackend = PhotoBackend(jc.PhotoBackend)
	}

	if jc.S3.Endpoint != "" {
		cfg.S3.Endpoint = jc.S3.Endpoint
	}
	if jc.S3.Region != "" {
		cfg.S3.Region = jc.S3.Region
	}
	if jc.S3.Bucket != "" {
		cfg.S3.Bucket = jc.S3.Bucket
	}
	if jc.S3.Prefix != "" {
		cfg.S3.Prefix = jc.S3.Prefix
	}
	if jc.S3.AccessKeyID != "" {
		cfg.S3.AccessKeyID = jc.S3.AccessKeyID
	}
	if jc.S3.SecretAccessKey != "" {
		cfg.S3.SecretAccessKey = jc.S3.SecretAccessKey
	}
}
