package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campuseats/campuseats/internal/models"
)

// FeeService is interface for service fee accounting
type FeeService interface {
	Summary(ctx context.Context, restaurantID uint64, actor models.TokenPayload) (models.FeeSummary, error)
	Collect(ctx context.Context, restaurantID uint64, actor models.TokenPayload) (models.FeeCollection, error)
}

// FeeHandler represents HTTP handler for fee-related requests
type FeeHandler struct {
	svc FeeService
}

// NewFeeHandler creates new FeeHandler instance
func NewFeeHandler(svc FeeService) *FeeHandler {
	return &FeeHandler{svc: svc}
}

type feeSummaryResp struct {
	Lifetime          int64 `json:"lifetime"`
	MonthToDate       int64 `json:"monthToDate"`
	CardTotal         int64 `json:"cardTotal"`
	OrderCount        int64 `json:"orderCount"`
	Outstanding       int64 `json:"outstanding"`
	OutstandingOrders int   `json:"outstandingOrders"`
}

type feeCollectionResp struct {
	Amount     int64 `json:"amount"`
	OrderCount int   `json:"orderCount"`
}

// GetFeeSummary returns fee aggregates and the outstanding view
func (fh *FeeHandler) GetFeeSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		restaurantID, err := fh.restaurantID(r, payload)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		summary, err := fh.svc.Summary(r.Context(), restaurantID, *payload)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, feeSummaryResp{
			Lifetime:          summary.Aggregates.Lifetime,
			MonthToDate:       summary.Aggregates.MonthToDate,
			CardTotal:         summary.Aggregates.CardTotal,
			OrderCount:        summary.Aggregates.OrderCount,
			Outstanding:       summary.Outstanding.Total,
			OutstandingOrders: summary.Outstanding.OrderCount,
		})
	}
}

// CollectFees collects all outstanding fees for a restaurant
func (fh *FeeHandler) CollectFees() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		restaurantID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		collection, err := fh.svc.Collect(r.Context(), restaurantID, *payload)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, feeCollectionResp{
			Amount:     collection.Amount,
			OrderCount: collection.OrderCount,
		})
	}
}

// restaurantID resolves the target restaurant: restaurants query their own,
// super-admins pass an explicit id
func (fh *FeeHandler) restaurantID(r *http.Request, payload *models.TokenPayload) (uint64, error) {
	if payload.Role == models.RoleRestaurant {
		return payload.UserID, nil
	}
	return strconv.ParseUint(r.URL.Query().Get("restaurant"), 10, 64)
}
