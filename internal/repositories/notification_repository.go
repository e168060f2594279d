package repositories

import (
	"time"

	"github.com/shufflegram/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for the delivery log
type NotificationRepository interface {
	Record(notification *models.Notification) error
	RecentByRecipient(recipientID string, limit int) ([]models.Notification, error)
	CountSince(since time.Time) (int64, error)
}

// PostgresNotificationRepository implements NotificationRepository using GORM
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// Record appends one delivery attempt to the log
func (r *PostgresNotificationRepository) Record(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// RecentByRecipient returns the latest log rows for one recipient
func (r *PostgresNotificationRepository) RecentByRecipient(recipientID string, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// CountSince returns the number of delivery attempts recorded after the
// given time
func (r *PostgresNotificationRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
