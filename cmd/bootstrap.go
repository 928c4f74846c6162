package cmd

import (
	"context"
	"fmt"

	"mom-toolkit/core/config"
	"mom-toolkit/core/hostinfo"
	"mom-toolkit/core/logger"
	"mom-toolkit/feature/manifest"

	"go.uber.org/zap"
)

// runtimeDeps is what every command needs before doing any work.
type runtimeDeps struct {
	cfg      *config.Config
	logger   *zap.Logger
	manifest *manifest.Manifest
	host     *hostinfo.Info
}

func bootstrap(ctx context.Context) (*runtimeDeps, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// 3. Load Manifest
	m, err := manifest.Load(cfg.Manifest.Path)
	if err != nil {
		return nil, err
	}

	// 4. Detect Host
	host, err := hostinfo.NewDetector(cfg.Extract.HostBits).Detect(ctx)
	if err != nil {
		return nil, err
	}
	logg.Debug("Host detected",
		zap.String("host", host.Describe()),
		zap.String("platform", host.Platform),
		zap.String("version", host.Version),
	)

	return &runtimeDeps{cfg: cfg, logger: logg, manifest: m, host: host}, nil
}
