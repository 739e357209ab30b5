package persistence

import (
	"context"
	"fmt"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence/models"
	"github.com/someilay/QuasarTest/internal/pkg/logger"

	"gorm.io/gorm"
)

// activityBatchSize limits the number of rows per INSERT when storing
// generated activity events.
const activityBatchSize = 100

type gormActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository implementation
func NewGormActivityRepository(db *gorm.DB, logger logger.Logger) (activities.ActivityRepository, error) {
	return &gormActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormActivityRepository) Create(ctx context.Context, activity *activities.Activity) error {
	if err := activity.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ActivityModel{}
	model.FromDomain(activity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	activity.ID = model.ID
	return nil
}

func (r *gormActivityRepository) CreateBatch(ctx context.Context, batch []*activities.Activity) error {
	if len(batch) == 0 {
		return nil
	}

	modelBatch := make([]*models.ActivityModel, len(batch))
	for i, activity := range batch {
		if err := activity.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		modelBatch[i] = &models.ActivityModel{}
		modelBatch[i].FromDomain(activity)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelBatch, activityBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create activity batch: %w", err)
	}

	r.logger.Info("Stored activity batch of size ", len(batch))
	return nil
}

func (r *gormActivityRepository) ListByUserID(ctx context.Context, userID int64) ([]*activities.Activity, error) {
	var modelList []*models.ActivityModel
	err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	domainList := make([]*activities.Activity, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormActivityRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ActivityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete activities: %w", err)
	}

	r.logger.Info("Deleted activities of user ", userID)
	return nil
}

func (r *gormActivityRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}
