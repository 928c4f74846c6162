package manifest

// Config selects the manifest source.
type Config struct {
	// Path points to a YAML manifest replacing the built-in one.
	Path string `mapstructure:"path" default:""`
}
