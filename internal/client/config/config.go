package config

import "time"

// PhotoBackend selects where evidence photos are uploaded after a record syncs.
type PhotoBackend string

const (
	// PhotoBackendGateway uploads via gateway-issued presigned URLs.
	PhotoBackendGateway PhotoBackend = "gateway"
	// PhotoBackendS3 uploads straight to an S3-compatible bucket.
	PhotoBackendS3 PhotoBackend = "s3"
	// PhotoBackendNone disables photo upload; records still sync.
	PhotoBackendNone PhotoBackend = "none"
)

// S3Options configures the direct-to-bucket photo backend.
type S3Options struct {
	Endpoint        string
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds runtime settings for the field CLI.
//
// Units: OnlineCheckInterval and CallTimeout are time.Durations.
type Config struct {
	// GatewayAddr is host:port of the MANTIS sync gateway gRPC endpoint.
	GatewayAddr string
	// DatabasePath is the local SQLite file holding the offline queue.
	DatabasePath string
	// OnlineCheckInterval is how often the client probes gateway reachability.
	OnlineCheckInterval time.Duration
	// CallTimeout bounds individual gateway calls during a sync pass.
	CallTimeout time.Duration

	PhotoBackend PhotoBackend
	S3           S3Options
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayAddr = "127.0.0.1:50051"
	c.DatabasePath = "mantis-field.db"
	c.OnlineCheckInterval = 30 * time.Second
	c.CallTimeout = 10 * time.Second
	c.PhotoBackend = PhotoBackendGateway
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
