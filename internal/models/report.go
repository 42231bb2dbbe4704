package models

import (
	"time"

	"github.com/google/uuid"
)

// report type
const (
	ReportTypeRestaurantClosed    = "RESTAURANT_CLOSED"
	ReportTypeAcceptedNotPrepared = "ACCEPTED_NOT_PREPARED"
	ReportTypeOther               = "OTHER"
)

// report status
const (
	ReportStatusPending   = "PENDING"
	ReportStatusResolved  = "RESOLVED_BY_RESTAURANT"
	ReportStatusConfirmed = "CONFIRMED_BY_STUDENT"
	ReportStatusEscalated = "ESCALATED"
)

// ValidReportType reports whether t is a known report type
func ValidReportType(t string) bool {
	switch t {
	case ReportTypeRestaurantClosed, ReportTypeAcceptedNotPrepared, ReportTypeOther:
		return true
	}
	return false
}

// three-strike and anti-spam windows
const (
	StrikeWindow      = 2 * time.Hour
	StrikeThreshold   = 3
	ReportRateWindow  = 24 * time.Hour
	StaleResolveAfter = 24 * time.Hour
)

// Report is report entity
type Report struct {
	ID           uuid.UUID
	Type         string
	Status       string
	StudentID    uint64
	RestaurantID uint64
	OrderID      *uint64
	Comment      string
	CreatedAt    time.Time
	ResolvedAt   *time.Time
	UpdatedAt    time.Time
}
