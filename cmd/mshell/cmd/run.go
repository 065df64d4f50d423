package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mshell "github.com/msto63/mShell"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Starts the interactive shell",
	Long: `Starts the terminal UI. Input is parsed into command chains,
one chain runs at a time and its output appears in the transcript.

Keys:
  Enter   runs the input line
  Ctrl+C  interrupts the running chain, quits when idle
  Esc     quits`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so verbose logging goes to a file.
	logOutput := io.Writer(io.Discard)
	if verbose {
		f, ferr := os.OpenFile("mshell.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		logOutput = f
	}
	logger := log.New().WithOutput(logOutput).WithFormat(log.FormatText)

	presenter := tui.NewPresenter()
	sh, err := mshell.New(mshell.Options{
		Config:    cfg,
		Logger:    logger,
		Presenter: presenter,
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	prog := tea.NewProgram(tui.NewModel(sh), tea.WithAltScreen())
	presenter.Attach(prog)

	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shell error: %v\n", err)
		return err
	}
	return nil
}
