package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new order confirmation email record.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.EmailNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// UpdateStatus sets the delivery status of a notification.
func (repo *notificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailNotificationModel{}).
		Where("id = ?", id).
		Update("email_status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.EmailNotificationModel) *entity.EmailNotification {
	if data == nil {
		return nil
	}

	return &entity.EmailNotification{
		ID:         data.ID,
		OrderID:    data.OrderID,
		CustomerID: data.CustomerID,
		Status:     entity.EmailStatus(data.EmailStatus),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromNotificationDomain(data *entity.EmailNotification) *model.EmailNotificationModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.EmailStatusPending
	}

	return &model.EmailNotificationModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		CustomerID:  data.CustomerID,
		EmailStatus: string(status),
	}
}
