package cmd

import (
	"fmt"

	"mom-toolkit/core/output"
	"mom-toolkit/core/storage"
	"mom-toolkit/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewVerifyCmd builds the installation verifier command.
func NewVerifyCmd() *cobra.Command {
	var reportFile string
	var strict bool

	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify a MoM server installation",
		Long: `Checks environment variables, directories, files, Python modules, native
binaries, game content and database files of the server tree, then prints a
PASS/FAIL summary with remediation steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = deps.logger.Sync() }()
			cfg := deps.cfg

			if cmd.Flags().Changed("strict") {
				cfg.Verify.Strict = strict
			}
			if reportFile != "" {
				cfg.Verify.ReportFile = reportFile
			}

			svc := integrity.NewService(deps.manifest, cfg.Server, cfg.Verify, cfg.Database, deps.host, deps.logger)
			rep, err := svc.Run(ctx)
			if err != nil {
				return err
			}

			out, f := output.Stdout()
			integrity.RenderText(out, f, rep)

			if cfg.Verify.ReportFile != "" {
				if err := integrity.WriteJSONFile(cfg.Verify.ReportFile, rep); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				deps.logger.Info("Report written", zap.String("path", cfg.Verify.ReportFile))
			}

			if cfg.Storage.Enabled {
				client, err := storage.NewClient(cfg.Storage)
				if err != nil {
					deps.logger.Warn("Report upload skipped", zap.Error(err))
				} else {
					key, err := integrity.NewPublisher(client, cfg.Storage, deps.logger).Publish(ctx, rep)
					if err != nil {
						deps.logger.Warn("Report upload failed", zap.Error(err))
					} else {
						deps.logger.Info("Report uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("key", key))
					}
				}
			}

			if code := rep.Summary.ExitCode(cfg.Verify.Strict); code != integrity.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	c.Flags().StringVar(&reportFile, "json", "", "Write the verification report as JSON to this file")
	c.Flags().BoolVar(&strict, "strict", false, "Exit with status 2 when verification fails")
	return c
}
