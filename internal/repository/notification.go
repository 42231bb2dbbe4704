package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/repository/postgres"
)

const (
	insertNotificationQuery = `
						INSERT INTO notifications (id, recipient_id, recipient_role, type, title, message)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING created_at
`
	countUnreadQuery = `
						SELECT COUNT(*) FROM notifications
						WHERE recipient_id = $1 AND recipient_role = $2 AND NOT is_read
`
	selectByRecipientQuery = `
						SELECT id, recipient_id, recipient_role, type, title, message, is_read, created_at
						FROM notifications
						WHERE recipient_id = $1 AND recipient_role = $2
						ORDER BY created_at DESC
`
	markReadQuery = `
						UPDATE notifications SET is_read = true
						WHERE id = $1 AND recipient_id = $2
`
	selectAdminIDsQuery = `SELECT id FROM admins`
)

// NotificationRepository implements NotificationRepository interface
type NotificationRepository struct {
	db *postgres.DB
}

// NewNotificationRepository creates new NotificationRepository instance
func NewNotificationRepository(db *postgres.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification persists the notification and recomputes the recipient
// unread count in the same transaction
func (nr *NotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) (int64, error) {
	tx, err := nr.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertNotificationQuery, n.ID, n.RecipientID, n.RecipientRole,
		n.Type, n.Title, n.Message).Scan(&n.CreatedAt)
	if err != nil {
		return 0, err
	}

	var unread int64
	if err := tx.QueryRow(ctx, countUnreadQuery, n.RecipientID, n.RecipientRole).Scan(&unread); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return unread, nil
}

// ListByRecipient returns recipient notifications, newest first
func (nr *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uint64, role string) ([]models.Notification, error) {
	rows, err := nr.db.Query(ctx, selectByRecipientQuery, recipientID, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}

	for rows.Next() {
		n := models.Notification{}
		err = rows.Scan(&n.ID, &n.RecipientID, &n.RecipientRole, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
		if err != nil {
			continue
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// UnreadCount returns number of unread recipient notifications
func (nr *NotificationRepository) UnreadCount(ctx context.Context, recipientID uint64, role string) (int64, error) {
	var unread int64
	err := nr.db.QueryRow(ctx, countUnreadQuery, recipientID, role).Scan(&unread)
	if err != nil {
		return 0, err
	}

	return unread, nil
}

// MarkRead marks notification as read, restricted to the owning recipient
func (nr *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipientID uint64) error {
	cmd, err := nr.db.Exec(ctx, markReadQuery, id, recipientID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// SuperAdminIDs returns ids of all super-admin accounts
func (nr *NotificationRepository) SuperAdminIDs(ctx context.Context) ([]uint64, error) {
	rows, err := nr.db.Query(ctx, selectAdminIDsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64

	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
