package repository

import (
	"context"
	"time"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/repository/postgres"
)

const (
	selectFeeAggregatesQuery = `
						SELECT COALESCE(SUM(service_fee), 0),
						       COALESCE(SUM(service_fee) FILTER (WHERE date_trunc('month', completed_at) = date_trunc('month', $2::timestamptz)), 0),
						       COALESCE(SUM(service_fee) FILTER (WHERE payment_status = 'PAID'), 0),
						       COUNT(*) FILTER (WHERE service_fee > 0)
						FROM orders
						WHERE restaurant_id = $1 AND status = 'COMPLETED'
`
	selectOutstandingFeesQuery = `
						SELECT id, service_fee FROM orders
						WHERE restaurant_id = $1 AND status = 'COMPLETED'
						      AND NOT service_fee_collected AND refund_status <> 'REFUNDED'
`
	collectFeesQuery = `
						UPDATE orders SET service_fee_collected = true
						WHERE id = ANY($1) AND NOT service_fee_collected
`
)

// FeeRepository implements FeeRepository interface
type FeeRepository struct {
	db *postgres.DB
}

// NewFeeRepository creates new FeeRepository instance
func NewFeeRepository(db *postgres.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// Aggregates returns service fee aggregates over completed restaurant orders
func (fr *FeeRepository) Aggregates(ctx context.Context, restaurantID uint64, now time.Time) (models.FeeAggregates, error) {
	agg := models.FeeAggregates{}
	err := fr.db.QueryRow(ctx, selectFeeAggregatesQuery, restaurantID, now).
		Scan(&agg.Lifetime, &agg.MonthToDate, &agg.CardTotal, &agg.OrderCount)
	if err != nil {
		return models.FeeAggregates{}, err
	}

	return agg, nil
}

// Outstanding returns the sum of currently uncollected fees
func (fr *FeeRepository) Outstanding(ctx context.Context, restaurantID uint64) (models.FeeOutstanding, error) {
	_, out, err := fr.outstandingSet(ctx, restaurantID)
	return out, err
}

// Collect marks the exact set of currently outstanding orders as collected.
// The bulk update is conditional on collected=false, and a mismatch between
// affected rows and the selected set aborts the whole collection as a
// retryable conflict so amounts are never split or double-counted.
func (fr *FeeRepository) Collect(ctx context.Context, restaurantID uint64) (models.FeeCollection, error) {
	tx, err := fr.db.Begin(ctx)
	if err != nil {
		return models.FeeCollection{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, selectOutstandingFeesQuery, restaurantID)
	if err != nil {
		return models.FeeCollection{}, err
	}

	var (
		ids   []uint64
		total int64
	)
	for rows.Next() {
		var (
			id  uint64
			fee int64
		)
		if err := rows.Scan(&id, &fee); err != nil {
			rows.Close()
			return models.FeeCollection{}, err
		}
		ids = append(ids, id)
		total += fee
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return models.FeeCollection{}, err
	}

	if len(ids) == 0 {
		return models.FeeCollection{}, tx.Commit(ctx)
	}

	cmd, err := tx.Exec(ctx, collectFeesQuery, ids)
	if err != nil {
		return models.FeeCollection{}, err
	}

	if cmd.RowsAffected() != int64(len(ids)) {
		// a completion or prior collection raced in between
		return models.FeeCollection{}, models.ErrConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return models.FeeCollection{}, err
	}

	return models.FeeCollection{Amount: total, OrderCount: len(ids)}, nil
}

func (fr *FeeRepository) outstandingSet(ctx context.Context, restaurantID uint64) ([]uint64, models.FeeOutstanding, error) {
	rows, err := fr.db.Query(ctx, selectOutstandingFeesQuery, restaurantID)
	if err != nil {
		return nil, models.FeeOutstanding{}, err
	}
	defer rows.Close()

	var (
		ids []uint64
		out models.FeeOutstanding
	)
	for rows.Next() {
		var (
			id  uint64
			fee int64
		)
		if err := rows.Scan(&id, &fee); err != nil {
			continue
		}
		ids = append(ids, id)
		out.Total += fee
		out.OrderCount++
	}

	if err := rows.Err(); err != nil {
		return nil, models.FeeOutstanding{}, err
	}

	return ids, out, nil
}
