package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuseats/campuseats/internal/logger"
	"github.com/campuseats/campuseats/internal/models"
)

// ReportRepository is interface for interacting with report-related data
type ReportRepository interface {
	// CreateReport inserts new report
	CreateReport(ctx context.Context, report *models.Report) error
	// GetReportByID returns report by id
	GetReportByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	// LastReportAgainstRestaurant returns the student's most recent report to the restaurant
	LastReportAgainstRestaurant(ctx context.Context, studentID, restaurantID uint64) (*models.Report, error)
	// CountDistinctReporters counts unique reporting students in the window
	CountDistinctReporters(ctx context.Context, restaurantID uint64, reportType string, since time.Time) (int, error)
	// DisableRestaurant disables restaurant once, returns true when this call won
	DisableRestaurant(ctx context.Context, restaurantID uint64) (bool, error)
	// EscalateReportsInWindow escalates matching pending and resolved reports
	EscalateReportsInWindow(ctx context.Context, restaurantID uint64, reportType string, since time.Time) (int64, error)
	// EscalateStaleResolved escalates reports resolved but unconfirmed past the deadline
	EscalateStaleResolved(ctx context.Context, olderThan time.Time) (int64, error)
	// ResolveReport moves report to resolved conditionally
	ResolveReport(ctx context.Context, id uuid.UUID, from, to string) error
	// UpdateReportStatus applies conditional report status transition
	UpdateReportStatus(ctx context.Context, id uuid.UUID, from, to string) error
	// AcquireSweepLock takes the advisory lock guarding the sweep
	AcquireSweepLock(ctx context.Context) (release func(), ok bool, err error)
}

// ReportService implements report collection and automatic escalation
type ReportService struct {
	repo     ReportRepository
	notifier Notifier
	now      func() time.Time
}

// NewReportService creates new ReportService instance
func NewReportService(repo ReportRepository, notifier Notifier) *ReportService {
	return &ReportService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create files a student report after the anti-spam gates and runs the
// three-strike check
func (rs *ReportService) Create(ctx context.Context, draft models.ReportDraft) (*models.Report, error) {
	if !models.ValidReportType(draft.Type) {
		return nil, models.ErrInvalidReportType
	}

	last, err := rs.repo.LastReportAgainstRestaurant(ctx, draft.StudentID, draft.RestaurantID)
	if err != nil && !errors.Is(err, models.ErrDataNotFound) {
		return nil, err
	}
	if last != nil && rs.now().Sub(last.CreatedAt) < models.ReportRateWindow {
		return nil, models.ErrReportRateLimited
	}

	report := &models.Report{
		ID:           uuid.New(),
		Type:         draft.Type,
		Status:       models.ReportStatusPending,
		StudentID:    draft.StudentID,
		RestaurantID: draft.RestaurantID,
		OrderID:      draft.OrderID,
		Comment:      draft.Comment,
	}

	if err := rs.repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	rs.checkStrikes(ctx, report)

	return report, nil
}

// Resolve moves a pending report to resolved on behalf of the restaurant
func (rs *ReportService) Resolve(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error {
	if actor.Role != models.RoleRestaurant {
		return models.ErrForbidden
	}

	report, err := rs.repo.GetReportByID(ctx, id)
	if err != nil {
		return err
	}
	if report.RestaurantID != actor.UserID {
		return models.ErrForbidden
	}

	if err := rs.repo.ResolveReport(ctx, id, models.ReportStatusPending, models.ReportStatusResolved); err != nil {
		return err
	}

	if err := rs.notifier.Notify(ctx, report.StudentID, models.RoleStudent,
		models.NotificationReportResolved, "Report resolved",
		"The restaurant marked your report as resolved, please confirm"); err != nil {
		logger.Log.Error("notify report resolution", zap.String("report", id.String()), zap.Error(err))
	}

	return nil
}

// Confirm lets the reporting student confirm a resolution
func (rs *ReportService) Confirm(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error {
	if actor.Role != models.RoleStudent {
		return models.ErrForbidden
	}

	report, err := rs.repo.GetReportByID(ctx, id)
	if err != nil {
		return err
	}
	if report.StudentID != actor.UserID {
		return models.ErrForbidden
	}

	return rs.repo.UpdateReportStatus(ctx, id, models.ReportStatusResolved, models.ReportStatusConfirmed)
}

// SweepStale escalates reports left resolved without confirmation for longer
// than the staleness deadline and notifies super-admins of the batch. The
// pass is skipped when another instance holds the sweep lock.
func (rs *ReportService) SweepStale(ctx context.Context) error {
	release, ok, err := rs.repo.AcquireSweepLock(ctx)
	if err != nil {
		return err
	}
	if !ok {
		logger.Log.Debug("sweep lock held elsewhere, skipping pass")
		return nil
	}
	defer release()

	escalated, err := rs.repo.EscalateStaleResolved(ctx, rs.now().Add(-models.StaleResolveAfter))
	if err != nil {
		return err
	}
	if escalated == 0 {
		return nil
	}

	logger.Log.Info("escalated stale resolved reports", zap.Int64("count", escalated))

	if err := rs.notifier.NotifyAdmins(ctx, models.NotificationReportEscalated,
		"Reports escalated",
		fmt.Sprintf("%d reports were resolved but left unconfirmed for over 24 hours", escalated)); err != nil {
		logger.Log.Error("notify stale escalation batch", zap.Error(err))
	}

	return nil
}

// checkStrikes runs the three-strike rule after report creation: three unique
// students reporting the same type against the same restaurant within the
// window disable the restaurant exactly once and escalate the whole window
func (rs *ReportService) checkStrikes(ctx context.Context, report *models.Report) {
	since := rs.now().Add(-models.StrikeWindow)

	reporters, err := rs.repo.CountDistinctReporters(ctx, report.RestaurantID, report.Type, since)
	if err != nil {
		logger.Log.Error("count distinct reporters", zap.Uint64("restaurant", report.RestaurantID), zap.Error(err))
		return
	}
	if reporters < models.StrikeThreshold {
		return
	}

	disabled, err := rs.repo.DisableRestaurant(ctx, report.RestaurantID)
	if err != nil {
		logger.Log.Error("disable restaurant", zap.Uint64("restaurant", report.RestaurantID), zap.Error(err))
		return
	}

	escalated, err := rs.repo.EscalateReportsInWindow(ctx, report.RestaurantID, report.Type, since)
	if err != nil {
		logger.Log.Error("escalate reports in window", zap.Uint64("restaurant", report.RestaurantID), zap.Error(err))
		return
	}

	if !disabled {
		// another creation already handled this incident
		return
	}

	logger.Log.Warn("restaurant disabled by three-strike rule",
		zap.Uint64("restaurant", report.RestaurantID),
		zap.String("type", report.Type),
		zap.Int64("escalated", escalated))

	if err := rs.notifier.NotifyAdmins(ctx, models.NotificationRestaurantDisabled,
		"Restaurant disabled",
		fmt.Sprintf("Restaurant %d was disabled after %d students reported %s within 2 hours",
			report.RestaurantID, reporters, report.Type)); err != nil {
		logger.Log.Error("notify restaurant disable", zap.Uint64("restaurant", report.RestaurantID), zap.Error(err))
	}
}
