package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mShell/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mshell",
	Short: "mShell - embeddable command shell",
	Long: `mShell is a command shell designed for embedding into
applications. Input lines are parsed into chains of piped commands,
verified against registered schemas and executed one chain at a time.

Commands:
  run      starts the interactive shell
  exec     runs one command line and exits
  version  shows version information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default: ./configs/mshell.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadConfig reads the configured file, falling back to the default
// locations and finally to built-in defaults.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		for _, candidate := range []string{"mshell.toml", "configs/mshell.toml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	return config.LoadWithOptions(config.Options{
		Path:      path,
		EnvPrefix: "MSHELL",
	})
}
