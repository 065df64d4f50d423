package main

import (
	"os"

	"github.com/msto63/mShell/cmd/mshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
