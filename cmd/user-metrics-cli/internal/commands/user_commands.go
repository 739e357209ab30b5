package commands

import (
	"fmt"

	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates logic for inspecting stored users via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
// with a configured logger.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &UserCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListUsersCmd prints a page of stored users ordered by id
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}
	page, err := cmd.Flags().GetInt("page")
	if err != nil {
		commandHandler.logger.Error("invalid page flag ", err)
		return
	}
	perPage, err := cmd.Flags().GetInt("per-page")
	if err != nil {
		commandHandler.logger.Error("invalid per-page flag ", err)
		return
	}

	userRepo, _, err := openRepositories(configPath, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	query := users.NewUserQuery()
	query.Page = page
	query.PerPage = perPage
	if err := query.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	userList, err := userRepo.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, user := range userList {
		fmt.Printf("%d\t%s\t%s\t%s\n",
			user.ID, user.Username, user.Email, user.RegistrationDate.Format("2006-01-02"))
	}
	commandHandler.logger.Info("Listed ", len(userList), " users")
}

// InitUserCommands registers user inspection commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List stored users ordered by id",
		Run:   handler.ListUsersCmd,
	}
	listUsersCmd.Flags().StringP("config", "", "./configs/rest-app.yaml", "Path to the YAML config file")
	listUsersCmd.Flags().IntP("page", "", 0, "Zero-based page index")
	listUsersCmd.Flags().IntP("per-page", "", 10, "Page size (max 100)")
	rootCmd.AddCommand(listUsersCmd)

	return nil
}
