package service

import (
	"context"
	"time"

	"github.com/campuseats/campuseats/internal/models"
)

// FeeRepository is interface for interacting with service-fee bookkeeping
type FeeRepository interface {
	// Aggregates returns fee aggregates over completed restaurant orders
	Aggregates(ctx context.Context, restaurantID uint64, now time.Time) (models.FeeAggregates, error)
	// Outstanding returns the sum of currently uncollected fees
	Outstanding(ctx context.Context, restaurantID uint64) (models.FeeOutstanding, error)
	// Collect marks the outstanding set collected, conflicting on races
	Collect(ctx context.Context, restaurantID uint64) (models.FeeCollection, error)
}

// FeeService implements service fee accounting
type FeeService struct {
	repo FeeRepository
	now  func() time.Time
}

// NewFeeService creates new FeeService instance
func NewFeeService(repo FeeRepository) *FeeService {
	return &FeeService{repo: repo, now: time.Now}
}

// Summary returns fee aggregates and the outstanding view for a restaurant.
// Restaurants may only see their own summary.
func (fs *FeeService) Summary(ctx context.Context, restaurantID uint64, actor models.TokenPayload) (models.FeeSummary, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
	case models.RoleRestaurant:
		if actor.UserID != restaurantID {
			return models.FeeSummary{}, models.ErrForbidden
		}
	default:
		return models.FeeSummary{}, models.ErrForbidden
	}

	agg, err := fs.repo.Aggregates(ctx, restaurantID, fs.now())
	if err != nil {
		return models.FeeSummary{}, err
	}

	out, err := fs.repo.Outstanding(ctx, restaurantID)
	if err != nil {
		return models.FeeSummary{}, err
	}

	return models.FeeSummary{Aggregates: agg, Outstanding: out}, nil
}

// Collect collects all currently outstanding fees for a restaurant. A
// conflict means another completion or collection raced in, the caller
// retries. A second immediate collection returns zero.
func (fs *FeeService) Collect(ctx context.Context, restaurantID uint64, actor models.TokenPayload) (models.FeeCollection, error) {
	if actor.Role != models.RoleSuperAdmin {
		return models.FeeCollection{}, models.ErrForbidden
	}

	return fs.repo.Collect(ctx, restaurantID)
}
