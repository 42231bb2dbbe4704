package models

import (
	"time"

	"github.com/google/uuid"
)

// notification type
const (
	NotificationOrderCancelled     = "ORDER_CANCELLED"
	NotificationReportEscalated    = "REPORT_ESCALATED"
	NotificationRestaurantDisabled = "RESTAURANT_DISABLED"
	NotificationReportResolved     = "REPORT_RESOLVED"
)

// Notification is notification entity. Created only by the dispatcher,
// read-state is mutated only by the owning recipient.
type Notification struct {
	ID            uuid.UUID
	RecipientID   uint64
	RecipientRole string
	Type          string
	Title         string
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}
