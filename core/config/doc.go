// Package config provides configuration management for the MoM server toolkit.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Server: server tree root and OS family override (SERVER_ROOT, SERVER_FAMILY)
//   - Verify: strict exit code, JSON report file, extra module search path
//   - Extract: destination directory and interpreter bit width override
//   - Manifest: path to a replacement manifest YAML
//   - Storage: S3/MinIO credentials and bucket for report uploads
//   - Database: SQLite inspection of the server's database files
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Root)
package config
