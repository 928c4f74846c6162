package client

// Config holds extractor settings.
type Config struct {
	// Dest skips the destination prompt when set.
	Dest string `mapstructure:"dest" default:""`
	// HostBits overrides the detected interpreter word size (32 or 64).
	HostBits int `mapstructure:"host_bits" default:"0"`
}
