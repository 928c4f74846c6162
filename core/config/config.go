package config

import (
	"fmt"
	"reflect"
	"strings"

	"mom-toolkit/core/database"
	"mom-toolkit/core/logger"
	"mom-toolkit/core/server"
	"mom-toolkit/core/storage"
	"mom-toolkit/feature/client"
	"mom-toolkit/feature/integrity"
	"mom-toolkit/feature/manifest"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the toolkit.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server locates the server tree both tools work on.
	Server server.Config `mapstructure:"server"`
	// Verify holds installation verifier settings.
	Verify integrity.Config `mapstructure:"verify"`
	// Extract holds client extractor settings.
	Extract client.Config `mapstructure:"extract"`
	// Manifest selects the artifact tables.
	Manifest manifest.Config `mapstructure:"manifest"`
	// Storage holds configuration for report uploads (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for database file inspection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. VERIFY_STRICT -> verify.strict)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if !config.Server.IsValidFamily() {
		return nil, fmt.Errorf("invalid server.family %q: want windows, unix or empty", config.Server.Family)
	}
	if hb := config.Extract.HostBits; hb != 0 && hb != 32 && hb != 64 {
		return nil, fmt.Errorf("invalid extract.host_bits %d: want 32, 64 or 0", hb)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
