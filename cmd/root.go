package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"mom-toolkit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mom-toolkit",
	Short: "MoM server setup toolkit",
	Long: `mom-toolkit prepares and diagnoses a Minions of Mirth server tree.
It extracts the required files from a game client installation and verifies
that a server tree has everything the zone servers need.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitError ends the process with Code without logging anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command.
func Execute() {
	ExecuteCommand(RootCmd)
}

// ExecuteCommand runs c as a top-level program and exits with its code.
func ExecuteCommand(c *cobra.Command) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	os.Exit(run(c, signals, os.Stderr))
}

// run executes c and returns the process exit code. An interrupt prints
// "Cancelled by user" and returns 1 even while c blocks on a prompt; a panic
// prints its stack and returns 1.
func run(c *cobra.Command, signals <-chan os.Signal, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)
	go func() {
		done <- execute(ctx, c, stderr)
	}()

	select {
	case code := <-done:
		return code
	case <-signals:
		cancel()
		fmt.Fprintln(stderr, "\n\nCancelled by user")
		return 1
	}
}

func execute(ctx context.Context, c *cobra.Command, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "\nFatal error: %v\n\n%s", r, debug.Stack())
			code = 1
		}
	}()

	err := c.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Use the application's standard logger for error reporting
	// We default to console format to match user expectations (CLI tool)
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		// Absolute fallback if logger creation fails (rare)
		fmt.Fprintln(stderr, err)
	}
	return 1
}

func init() {
	RootCmd.AddCommand(NewVerifyCmd(), NewExtractCmd())
}
