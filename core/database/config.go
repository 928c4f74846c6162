package database

// Config holds configuration for inspecting the server's database files.
type Config struct {
	// Inspect opens present database files and counts their tables.
	Inspect bool `mapstructure:"inspect" default:"true"`
	// TimeoutSeconds bounds the initial ping of a database file.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
