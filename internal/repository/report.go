package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/repository/postgres"
)

// sweepLockKey is the advisory lock key guarding the escalation sweep so a
// second process instance can not double-escalate
const sweepLockKey = 7340021

const (
	insertReportQuery = `
						INSERT INTO reports (id, type, status, student_id, restaurant_id, order_id, comment)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING created_at, updated_at
`
	selectReportByIDQuery = `
						SELECT id, type, status, student_id, restaurant_id, order_id, comment,
						       created_at, resolved_at, updated_at
						FROM reports
						WHERE id = $1
`
	selectLastReportQuery = `
						SELECT id, type, status, student_id, restaurant_id, order_id, comment,
						       created_at, resolved_at, updated_at
						FROM reports
						WHERE student_id = $1 AND restaurant_id = $2
						ORDER BY created_at DESC
						LIMIT 1
`
	countDistinctReportersQuery = `
						SELECT COUNT(DISTINCT student_id) FROM reports
						WHERE restaurant_id = $1 AND type = $2 AND created_at > $3
`
	disableRestaurantQuery = `
						UPDATE restaurants SET is_disabled = true, is_open = false, disabled_at = now()
						WHERE id = $1 AND NOT is_disabled
`
	escalateWindowQuery = `
						UPDATE reports SET status = 'ESCALATED', updated_at = now()
						WHERE restaurant_id = $1 AND type = $2 AND created_at > $3
						      AND status IN ('PENDING', 'RESOLVED_BY_RESTAURANT')
`
	escalateStaleQuery = `
						UPDATE reports SET status = 'ESCALATED', updated_at = now()
						WHERE status = 'RESOLVED_BY_RESTAURANT' AND resolved_at < $1
`
	resolveReportQuery = `
						UPDATE reports SET status = $2, resolved_at = now(), updated_at = now()
						WHERE id = $1 AND status = $3
`
	updateReportStatusQuery = `
						UPDATE reports SET status = $2, updated_at = now()
						WHERE id = $1 AND status = $3
`
)

// ReportRepository implements ReportRepository interface
type ReportRepository struct {
	db *postgres.DB
}

// NewReportRepository creates new ReportRepository instance
func NewReportRepository(db *postgres.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReport inserts new report. A duplicate (student, order) pair is
// rejected by the partial unique index and reported as already-reported.
func (rr *ReportRepository) CreateReport(ctx context.Context, report *models.Report) error {
	err := rr.db.QueryRow(ctx, insertReportQuery, report.ID, report.Type, report.Status,
		report.StudentID, report.RestaurantID, report.OrderID, report.Comment).
		Scan(&report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		if errCode := rr.db.ErrorCode(err); errCode == postgres.ErrCodeUniqueViolation {
			return models.ErrOrderAlreadyReported
		}
		return err
	}

	return nil
}

// GetReportByID returns report by id
func (rr *ReportRepository) GetReportByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := models.Report{}
	err := rr.db.QueryRow(ctx, selectReportByIDQuery, id).Scan(&report.ID, &report.Type, &report.Status,
		&report.StudentID, &report.RestaurantID, &report.OrderID, &report.Comment,
		&report.CreatedAt, &report.ResolvedAt, &report.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &report, nil
}

// LastReportAgainstRestaurant returns the student's most recent report to the restaurant
func (rr *ReportRepository) LastReportAgainstRestaurant(ctx context.Context, studentID, restaurantID uint64) (*models.Report, error) {
	report := models.Report{}
	err := rr.db.QueryRow(ctx, selectLastReportQuery, studentID, restaurantID).Scan(&report.ID,
		&report.Type, &report.Status, &report.StudentID, &report.RestaurantID, &report.OrderID,
		&report.Comment, &report.CreatedAt, &report.ResolvedAt, &report.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &report, nil
}

// CountDistinctReporters counts unique students reporting the restaurant for
// the given type since the window start
func (rr *ReportRepository) CountDistinctReporters(ctx context.Context, restaurantID uint64, reportType string, since time.Time) (int, error) {
	var count int
	err := rr.db.QueryRow(ctx, countDistinctReportersQuery, restaurantID, reportType, since).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// DisableRestaurant disables the restaurant, guarded on is_disabled so at most
// one disable and timestamp happen per incident. Returns true when this call won.
func (rr *ReportRepository) DisableRestaurant(ctx context.Context, restaurantID uint64) (bool, error) {
	cmd, err := rr.db.Exec(ctx, disableRestaurantQuery, restaurantID)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() == 1, nil
}

// EscalateReportsInWindow escalates every matching pending or resolved report
// in the strike window
func (rr *ReportRepository) EscalateReportsInWindow(ctx context.Context, restaurantID uint64, reportType string, since time.Time) (int64, error) {
	cmd, err := rr.db.Exec(ctx, escalateWindowQuery, restaurantID, reportType, since)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}

// EscalateStaleResolved escalates reports left resolved without student
// confirmation past the staleness deadline
func (rr *ReportRepository) EscalateStaleResolved(ctx context.Context, olderThan time.Time) (int64, error) {
	cmd, err := rr.db.Exec(ctx, escalateStaleQuery, olderThan)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}

// ResolveReport moves report to resolved conditionally on its current status
func (rr *ReportRepository) ResolveReport(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := rr.db.Exec(ctx, resolveReportQuery, id, to, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrStaleTransition
	}

	return nil
}

// UpdateReportStatus applies conditional report status transition
func (rr *ReportRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := rr.db.Exec(ctx, updateReportStatusQuery, id, to, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrStaleTransition
	}

	return nil
}

// AcquireSweepLock takes the advisory lock guarding the escalation sweep.
// When the lock is held by another instance it returns ok=false and the sweep
// pass is skipped. The returned release must be called when ok is true.
func (rr *ReportRepository) AcquireSweepLock(ctx context.Context) (release func(), ok bool, err error) {
	conn, err := rr.db.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}

	var locked bool
	if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, sweepLockKey).Scan(&locked); err != nil {
		conn.Release()
		return nil, false, err
	}

	if !locked {
		conn.Release()
		return nil, false, nil
	}

	release = func() {
		_, _ = conn.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, sweepLockKey)
		conn.Release()
	}

	return release, true, nil
}
