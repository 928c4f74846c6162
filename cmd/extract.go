package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"mom-toolkit/core/logger"
	"mom-toolkit/core/output"
	"mom-toolkit/core/prompt"
	"mom-toolkit/feature/client"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewExtractCmd builds the client extractor command.
func NewExtractCmd() *cobra.Command {
	var dest string

	c := &cobra.Command{
		Use:   "extract",
		Short: "Extract server files from a MoM client installation",
		Long: `Locates a Minions of Mirth client installation, copies the files the
server needs, unpacks the bundled Python packages and writes a launch script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = deps.logger.Sync() }()
			cfg := deps.cfg

			if dest != "" {
				cfg.Extract.Dest = dest
			}

			family := cfg.Server.ResolveFamily()
			home, _ := os.UserHomeDir()
			candidates := client.Candidates(deps.manifest.Client.Candidates.For(family), os.LookupEnv, home)

			out, f := output.Stdout()
			orch := client.NewOrchestrator(client.Options{
				Manifest:    deps.manifest,
				Config:      cfg.Extract,
				Family:      family,
				Host:        deps.host,
				Candidates:  candidates,
				DefaultDest: filepath.Join(filepath.Dir(cfg.Server.AbsRoot()), "mom_extracted"),
				Prompter:    prompt.New(os.Stdin, out),
				Out:         out,
				Formatter:   f,
				Logger:      logger.WithRunID(deps.logger, uuid.NewString()),
			})

			if _, err := orch.Run(ctx); err != nil {
				if errors.Is(err, client.ErrInstallationNotFound) {
					return &ExitError{Code: 1}
				}
				return err
			}
			return nil
		},
	}

	c.Flags().StringVar(&dest, "dest", "", "Extraction destination (skips the prompt)")
	return c
}
