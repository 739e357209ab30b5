package commands

import (
	"fmt"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence/models"
	"github.com/someilay/QuasarTest/internal/pkg/config"
	"github.com/someilay/QuasarTest/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openRepositories connects to the database named in the config file, runs
// the schema migrations and returns the repositories.
func openRepositories(configPath string, loggerInstance logger.Logger) (users.UserRepository, activities.ActivityRepository, error) {
	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.UserModel{}, &models.ActivityModel{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	activityRepo, err := persistence.NewGormActivityRepository(db, loggerInstance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create activity repository: %w", err)
	}

	return userRepo, activityRepo, nil
}
