package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence/models"
	"github.com/someilay/QuasarTest/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	// Validate domain entity (business rules)
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// An explicitly supplied id must not collide with an existing row
	if user.ID != 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user id: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("id %d: %w", user.ID, users.ErrDuplicateID)
		}
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Propagate the database-assigned id back to the caller
	user.ID = model.ID

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.UserModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})

	if query.Username != "" {
		dbQuery = dbQuery.Where("username = ?", query.Username)
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where("email = ?", query.Email)
	}

	dbQuery = dbQuery.
		Order("id asc").
		Offset(query.Page * query.PerPage).
		Limit(query.PerPage)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	return r.getOne(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *gormUserRepository) getOne(ctx context.Context, cond string, value interface{}) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(cond, value).Order("id asc").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username":          model.Username,
			"email":             model.Email,
			"registration_date": model.RegistrationDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrNotFound
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

func (r *gormUserRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	return r.deleteWhere(ctx, "username = ?", username)
}

func (r *gormUserRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return r.deleteWhere(ctx, "email = ?", email)
}

func (r *gormUserRepository) deleteWhere(ctx context.Context, cond string, value interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Where(cond, value).Delete(&models.UserModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete users: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("registration_date >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recent registrations: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) CountEmailSuffix(ctx context.Context, suffix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email LIKE ?", "%"+suffix).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count email suffix matches: %w", err)
	}
	return count, nil
}

func (r *gormUserRepository) ListByNameLength(ctx context.Context, limit int) ([]*users.User, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	var modelList []*models.UserModel
	// LENGTH is available on both SQLite and PostgreSQL
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Order("length(username) desc, id asc").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by name length: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
