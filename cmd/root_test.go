package cmd

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newTestCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	c := &cobra.Command{
		Use:           "test",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE,
	}
	c.SetArgs([]string{})
	return c
}

func TestRun(t *testing.T) {
	t.Run("success exits 0", func(t *testing.T) {
		var stderr bytes.Buffer
		c := newTestCmd(func(cmd *cobra.Command, args []string) error { return nil })

		assert.Equal(t, 0, run(c, nil, &stderr))
		assert.Empty(t, stderr.String())
	})

	t.Run("exit error keeps its code", func(t *testing.T) {
		var stderr bytes.Buffer
		c := newTestCmd(func(cmd *cobra.Command, args []string) error { return &ExitError{Code: 2} })

		assert.Equal(t, 2, run(c, nil, &stderr))
		assert.Empty(t, stderr.String())
	})

	t.Run("unexpected error exits 1", func(t *testing.T) {
		var stderr bytes.Buffer
		c := newTestCmd(func(cmd *cobra.Command, args []string) error { return errors.New("disk on fire") })

		assert.Equal(t, 1, run(c, nil, &stderr))
	})

	t.Run("panic prints stack and exits 1", func(t *testing.T) {
		var stderr bytes.Buffer
		c := newTestCmd(func(cmd *cobra.Command, args []string) error { panic("boom") })

		assert.Equal(t, 1, run(c, nil, &stderr))
		assert.Contains(t, stderr.String(), "Fatal error: boom")
		assert.Contains(t, stderr.String(), "goroutine ")
	})

	t.Run("interrupt cancels a blocked command", func(t *testing.T) {
		var stderr bytes.Buffer
		released := make(chan struct{})
		c := newTestCmd(func(cmd *cobra.Command, args []string) error {
			<-cmd.Context().Done()
			close(released)
			return nil
		})

		signals := make(chan os.Signal, 1)
		signals <- os.Interrupt

		assert.Equal(t, 1, run(c, signals, &stderr))
		assert.Contains(t, stderr.String(), "Cancelled by user")
		<-released
	})
}
