package commands

import (
	"fmt"

	"github.com/someilay/QuasarTest/internal/generator"
	"github.com/someilay/QuasarTest/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// GenDataCommandHandler encapsulates logic for seeding the database with
// synthetic users and activity events via CLI.
type GenDataCommandHandler struct {
	logger logger.Logger
}

// NewGenDataCommandHandler initializes and returns a GenDataCommandHandler
// instance with a configured logger.
func NewGenDataCommandHandler() (*GenDataCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &GenDataCommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenDataCmd seeds the configured database with synthetic users and activities
func (commandHandler *GenDataCommandHandler) GenDataCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}
	userCount, err := cmd.Flags().GetInt("users")
	if err != nil {
		commandHandler.logger.Error("invalid users flag ", err)
		return
	}
	maxActivities, err := cmd.Flags().GetInt("max-activities")
	if err != nil {
		commandHandler.logger.Error("invalid max-activities flag ", err)
		return
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag ", err)
		return
	}

	userRepo, activityRepo, err := openRepositories(configPath, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	dataGenerator, err := generator.NewDataGenerator(userRepo, activityRepo, seed, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	options := generator.Options{
		Users:         userCount,
		MaxActivities: maxActivities,
	}
	if err := dataGenerator.Generate(cmd.Context(), options); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Data generation finished")
}

// InitGenDataCommands registers the data generation command
func InitGenDataCommands(rootCmd *cobra.Command) error {
	handler, err := NewGenDataCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create gen-data command handler %w", err)
	}

	var genDataCmd = &cobra.Command{
		Use:   "gen-data",
		Short: "Seed the database with synthetic users and activity events",
		Run:   handler.GenDataCmd,
	}
	genDataCmd.Flags().StringP("config", "", "./configs/rest-app.yaml", "Path to the YAML config file")
	genDataCmd.Flags().IntP("users", "", generator.DefaultUsers, "Number of users to generate")
	genDataCmd.Flags().IntP("max-activities", "", generator.DefaultMaxActivities, "Maximum number of activity events per user")
	genDataCmd.Flags().Int64P("seed", "", 0, "Random seed; 0 picks a random one")
	rootCmd.AddCommand(genDataCmd)

	return nil
}
