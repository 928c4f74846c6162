package integrity

// Config holds verifier settings.
type Config struct {
	// Strict makes a FAIL verdict exit with ExitFailed instead of 0.
	Strict bool `mapstructure:"strict" default:"false"`
	// ReportFile receives a JSON copy of the report when set.
	ReportFile string `mapstructure:"report_file" default:""`
	// ExtraPath is appended to the module search path (site-packages etc.).
	ExtraPath string `mapstructure:"extra_path" default:""`
}
