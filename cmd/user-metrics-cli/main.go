// Package main is the entry point for the user-metrics-cli application.
// It initializes the root command, registers the data generation and user
// inspection sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/someilay/QuasarTest/cmd/user-metrics-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "user-metrics-cli",
		Short: "User metrics service CLI tool",
		Long: `user-metrics-cli is a command-line tool for managing the user metrics database.
It can seed the database with synthetic users and activity events and
inspect the stored users. The database is selected via a YAML config file,
the same one the REST API uses.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitGenDataCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize gen-data commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
