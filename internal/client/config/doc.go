// Package config loads runtime configuration for the MANTIS field CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the sync gateway gRPC endpoint
//	-d string   path to the local queue database
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "gateway_addr": "127.0.0.1:50051",
//	  "database_path": "/var/lib/mantis/field.db",
//	  "online_check_interval": "30s",
//	  "photo_backend": "s3",
//	  "s3": {"endpoint": "http://127.0.0.1:9000", "bucket": "evidence"}
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
