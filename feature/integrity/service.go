package integrity

import (
	"context"
	"fmt"
	"os"
	"time"

	"mom-toolkit/core/database"
	"mom-toolkit/core/hostinfo"
	"mom-toolkit/core/logger"
	"mom-toolkit/core/server"
	"mom-toolkit/feature/integrity/checks"
	"mom-toolkit/feature/manifest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service runs the installation checks.
type Service struct {
	manifest  *manifest.Manifest
	server    server.Config
	cfg       Config
	database  database.Config
	host      *hostinfo.Info
	lookupEnv checks.LookupEnv
	logger    *zap.Logger
}

// NewService creates a new verification service.
func NewService(m *manifest.Manifest, srv server.Config, cfg Config, db database.Config, host *hostinfo.Info, logger *zap.Logger) *Service {
	return &Service{
		manifest:  m,
		server:    srv,
		cfg:       cfg,
		database:  db,
		host:      host,
		lookupEnv: os.LookupEnv,
		logger:    logger,
	}
}

// WithLookupEnv replaces the environment source.
func (s *Service) WithLookupEnv(lookup checks.LookupEnv) *Service {
	s.lookupEnv = lookup
	return s
}

// Run evaluates every section in order and aggregates the results.
// Absent artifacts never stop the run; only a cancelled context does.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	root := s.server.AbsRoot()
	family := s.server.ResolveFamily()

	pythonPath, _ := s.lookupEnv(server.EnvSearchPath)
	searchPath := checks.SearchPath(root, pythonPath, s.cfg.ExtraPath)
	resolver := checks.NewResolver(searchPath)

	rep := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		Root:       root,
		Family:     family,
		Host:       s.host,
		SearchPath: searchPath,
	}

	log := logger.WithRunID(s.logger, rep.RunID)
	log.Info("Verifying installation",
		zap.String("root", root),
		zap.String("family", family),
		zap.Strings("search_path", searchPath),
	)

	steps := []func() Section{
		// 1. Environment variables
		func() Section {
			return single("1. ENVIRONMENT VARIABLES", checks.CheckEnvironment(s.manifest.Environment, s.lookupEnv))
		},
		// 2. Directories
		func() Section {
			return single("2. REQUIRED DIRECTORIES", checks.CheckDirectories(root, s.manifest.Directories))
		},
		// 3. Files
		func() Section {
			return single("3. REQUIRED FILES", checks.CheckFiles(root, s.manifest.Files))
		},
		// 4. Modules
		func() Section {
			return Section{
				Title: "4. PYTHON MODULE IMPORTS",
				Groups: []Group{
					{Title: "4.1 Standard Python Dependencies", Results: checks.CheckModules(resolver, s.manifest.Modules.Standard)},
					{Title: "4.2 Game-Specific Modules (from MOM_INSTALL)", Results: checks.CheckModules(resolver, s.manifest.Modules.Game)},
				},
			}
		},
		// 5. Submodules
		func() Section {
			return s.submodules(resolver)
		},
		// 6. Native binaries
		func() Section {
			return s.binaries(searchPath, family)
		},
		// 7. Game content
		func() Section {
			return single("7. GAME CONTENT (Mission Files)", []checks.CheckResult{checks.CheckContent(root, s.manifest.Content)})
		},
		// 8. Databases
		func() Section {
			return single("8. DATABASE FILES", checks.CheckDatabases(root, s.manifest.Databases, s.database))
		},
		// 9. Install markers
		func() Section {
			rep.Install = checks.CheckInstall(root, s.manifest.InstallMarkers)
			return single("9. INSTALLATION STATUS", []checks.CheckResult{rep.Install.Result()})
		},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("verification cancelled: %w", err)
		}
		section := step()
		log.Debug("Section checked", zap.String("section", section.Title), zap.Int("results", len(section.Results())))
		rep.Sections = append(rep.Sections, section)
	}

	rep.Summary = Aggregate(rep.Results())
	rep.Duration = time.Since(started)

	fields := []zap.Field{
		zap.String("verdict", string(rep.Summary.Verdict)),
		zap.Int("critical_failures", len(rep.Summary.CriticalFailures)),
		zap.Int("warnings", len(rep.Summary.Warnings)),
		zap.Duration("execution_time", rep.Duration),
	}
	if rep.Summary.Verdict == VerdictFail {
		log.Warn("Verification failed", fields...)
	} else {
		log.Info("Verification passed", fields...)
	}

	return rep, nil
}

func single(title string, results []checks.CheckResult) Section {
	return Section{Title: title, Groups: []Group{{Results: results}}}
}

func (s *Service) submodules(resolver *checks.Resolver) Section {
	sec := single("5. MUD SUBMODULE STRUCTURE", checks.CheckSubmodules(resolver, s.manifest.Submodules))

	parent := s.manifest.Submodules.Parent
	if loc, err := resolver.Resolve(parent); err == nil {
		sec.Notes = append(sec.Notes, fmt.Sprintf("%s module found at: %s", parent, loc.Path))
	} else {
		sec.Notes = append(sec.Notes, fmt.Sprintf("Cannot check %s submodules - %s module not available (%v)", parent, parent, err))
	}
	return sec
}

func (s *Service) binaries(searchPath []string, family string) Section {
	sec := single("6. TGE NATIVE BINARIES", checks.CheckBinaries(searchPath, s.manifest.Binaries, family))

	ext := ".so"
	if family == server.FamilyWindows {
		ext = ".pyd"
	}
	sec.Notes = append(sec.Notes, "Current platform: "+family)
	if s.host != nil {
		sec.Notes = append(sec.Notes, "Host: "+s.host.Describe())
	}
	sec.Notes = append(sec.Notes, "Expected binary extension: "+ext)
	return sec
}
