package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"utr/internal/cli"
	"utr/internal/cli/commands"
	"utr/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "utr",
		Short:   "Lesson-driven unit test runner",
		Long:    `An assertion harness and test runner built around a catalog of defensive-programming lessons. Each lesson pairs a buggy function variant with its fix and pins the behavior of both with test cases.`,
		Version: version,
	}
	rootCmd.SilenceUsage = true

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
