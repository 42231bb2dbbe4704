package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campuseats/campuseats/internal/models"
)

// NotificationService is interface for recipient-facing notification reads
type NotificationService interface {
	List(ctx context.Context, actor models.TokenPayload) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error
}

// NotificationHandler represents HTTP handler for notification-related requests
type NotificationHandler struct {
	svc NotificationService
}

// NewNotificationHandler creates new NotificationHandler instance
func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type notificationResp struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt string    `json:"createdAt"`
}

type listNotificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
	Unread        int64              `json:"unread"`
}

// ListNotifications returns the recipient notifications and unread count,
// the polling fallback for notification:new events
func (nh *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		notifications, unread, err := nh.svc.List(r.Context(), *payload)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := listNotificationsResp{Notifications: []notificationResp{}, Unread: unread}
		for _, n := range notifications {
			resp.Notifications = append(resp.Notifications, notificationResp{
				ID:        n.ID,
				Type:      n.Type,
				Title:     n.Title,
				Message:   n.Message,
				IsRead:    n.IsRead,
				CreatedAt: n.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// MarkNotificationRead marks the recipient's notification as read
func (nh *NotificationHandler) MarkNotificationRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if err := nh.svc.MarkRead(r.Context(), id, *payload); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
