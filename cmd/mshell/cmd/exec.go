package cmd

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mshell "github.com/msto63/mShell"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/output"
)

var execTimeout time.Duration

var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Runs one command line and exits",
	Long: `Runs one command line through the shell and writes the output
to stdout. The exit code is non-zero when the line produced an error.

Examples:
  mshell exec "print hello | linecount"
  mshell exec "service list"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 30*time.Second, "overall execution timeout")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOutput := io.Writer(io.Discard)
	if verbose {
		logOutput = os.Stderr
	}
	logger := log.New().WithOutput(logOutput)

	presenter := output.NewWriterPresenter(os.Stdout)
	sh, err := mshell.New(mshell.Options{
		Config:    cfg,
		Logger:    logger,
		Presenter: presenter,
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
	defer cancel()

	if err := sh.Exec(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	if presenter.ErrorCount() > 0 {
		sh.Close()
		os.Exit(1)
	}
	return nil
}
