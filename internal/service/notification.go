package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuseats/campuseats/internal/logger"
	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/realtime"
)

// NotificationRepository is interface for interacting with notification-related data
type NotificationRepository interface {
	// CreateNotification persists notification and returns the recipient unread count
	CreateNotification(ctx context.Context, n *models.Notification) (int64, error)
	// ListByRecipient returns recipient notifications, newest first
	ListByRecipient(ctx context.Context, recipientID uint64, role string) ([]models.Notification, error)
	// UnreadCount returns number of unread recipient notifications
	UnreadCount(ctx context.Context, recipientID uint64, role string) (int64, error)
	// MarkRead marks notification as read for the owning recipient
	MarkRead(ctx context.Context, id uuid.UUID, recipientID uint64) error
	// SuperAdminIDs returns ids of all super-admin accounts
	SuperAdminIDs(ctx context.Context) ([]uint64, error)
}

// NotificationService persists notifications and pushes them to the matching
// realtime room
type NotificationService struct {
	repo NotificationRepository
	pub  realtime.Publisher
}

// NewNotificationService creates new NotificationService instance
func NewNotificationService(repo NotificationRepository, pub realtime.Publisher) *NotificationService {
	return &NotificationService{repo: repo, pub: pub}
}

// notificationEvent is payload of notification:new events, carrying the
// running unread count so clients can update badges without a fetch
type notificationEvent struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Unread  int64     `json:"unread"`
}

// Notify persists a notification for the recipient and pushes it to the room
// matching the recipient role. The push is best-effort.
func (ns *NotificationService) Notify(ctx context.Context, recipientID uint64, role, notifType, title, message string) error {
	n := models.Notification{
		ID:            uuid.New(),
		RecipientID:   recipientID,
		RecipientRole: role,
		Type:          notifType,
		Title:         title,
		Message:       message,
	}

	unread, err := ns.repo.CreateNotification(ctx, &n)
	if err != nil {
		return err
	}

	event := realtime.Event{
		Name: realtime.EventNotificationNew,
		Payload: notificationEvent{
			ID:      n.ID,
			Type:    n.Type,
			Title:   n.Title,
			Message: n.Message,
			Unread:  unread,
		},
	}
	if err := ns.pub.Publish(ctx, realtime.RoomForRole(recipientID, role), event); err != nil {
		logger.Log.Error("publish notification event",
			zap.String("type", notifType), zap.Uint64("recipient", recipientID), zap.Error(err))
	}

	return nil
}

// NotifyAdmins notifies every super-admin account
func (ns *NotificationService) NotifyAdmins(ctx context.Context, notifType, title, message string) error {
	ids, err := ns.repo.SuperAdminIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := ns.Notify(ctx, id, models.RoleSuperAdmin, notifType, title, message); err != nil {
			logger.Log.Error("notify super-admin", zap.Uint64("admin", id), zap.Error(err))
		}
	}

	return nil
}

// List returns the actor notifications with the unread count
func (ns *NotificationService) List(ctx context.Context, actor models.TokenPayload) ([]models.Notification, int64, error) {
	notifications, err := ns.repo.ListByRecipient(ctx, actor.UserID, actor.Role)
	if err != nil {
		return nil, 0, err
	}

	unread, err := ns.repo.UnreadCount(ctx, actor.UserID, actor.Role)
	if err != nil {
		return nil, 0, err
	}

	return notifications, unread, nil
}

// MarkRead marks the actor's notification as read
func (ns *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error {
	return ns.repo.MarkRead(ctx, id, actor.UserID)
}
