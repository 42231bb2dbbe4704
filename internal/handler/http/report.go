package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campuseats/campuseats/internal/models"
)

// ReportService is interface for report collection and escalation
type ReportService interface {
	Create(ctx context.Context, draft models.ReportDraft) (*models.Report, error)
	Resolve(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error
	Confirm(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error
}

// ReportHandler represents HTTP handler for report-related requests
type ReportHandler struct {
	svc ReportService
}

// NewReportHandler creates new ReportHandler instance
func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type createReportReq struct {
	RestaurantID uint64  `json:"restaurantId"`
	OrderID      *uint64 `json:"orderId,omitempty"`
	Type         string  `json:"type"`
	Comment      string  `json:"comment,omitempty"`
}

type reportResp struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
}

// CreateReport handles a student filing a report
func (rh *ReportHandler) CreateReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if payload.Role != models.RoleStudent {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		req := createReportReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		report, err := rh.svc.Create(r.Context(), models.ReportDraft{
			StudentID:    payload.UserID,
			RestaurantID: req.RestaurantID,
			OrderID:      req.OrderID,
			Type:         req.Type,
			Comment:      req.Comment,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, reportResp{
			ID:        report.ID,
			Type:      report.Type,
			Status:    report.Status,
			CreatedAt: report.CreatedAt.Format(time.RFC3339),
		})
	}
}

// ResolveReport handles the restaurant resolving a report
func (rh *ReportHandler) ResolveReport() http.HandlerFunc {
	return rh.reportAction(func(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error {
		return rh.svc.Resolve(ctx, id, actor)
	})
}

// ConfirmReport handles the student confirming a resolution
func (rh *ReportHandler) ConfirmReport() http.HandlerFunc {
	return rh.reportAction(func(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error {
		return rh.svc.Confirm(ctx, id, actor)
	})
}

func (rh *ReportHandler) reportAction(action func(ctx context.Context, id uuid.UUID, actor models.TokenPayload) error) http.HandlerFunc {
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

		if err := action(r.Context(), id, *payload); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
