package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campuseats/campuseats/internal/models"
)

// OrderService is interface for the order lifecycle
type OrderService interface {
	Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
	ListStudentOrders(ctx context.Context, studentID uint64) ([]models.Order, error)
	ListActiveRestaurantOrders(ctx context.Context, restaurantID uint64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint64, target string, actor models.TokenPayload) error
	Cancel(ctx context.Context, orderID uint64, reason, comment string, actor models.TokenPayload) error
	SetPosRef(ctx context.Context, orderID uint64, ref string, actor models.TokenPayload) error
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderItemReq struct {
	ProductID uint64   `json:"productId"`
	Quantity  int32    `json:"quantity"`
	Note      string   `json:"note,omitempty"`
	ExtraIDs  []uint64 `json:"extraIds,omitempty"`
}

type createOrderReq struct {
	RestaurantID uint64               `json:"restaurantId"`
	Items        []createOrderItemReq `json:"items"`
	CardNumber   string               `json:"cardNumber"`
	CardHolder   string               `json:"cardHolder"`
	CardExpiry   string               `json:"cardExpiry"`
	CardCVV      string               `json:"cardCvv"`
}

type orderItemResp struct {
	ProductID uint64                 `json:"productId"`
	Name      string                 `json:"name"`
	Quantity  int32                  `json:"quantity"`
	Price     int64                  `json:"price"`
	Extras    []models.ExtraSnapshot `json:"extras,omitempty"`
	Note      string                 `json:"note,omitempty"`
}

type orderResp struct {
	ID         uint64          `json:"id"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	Subtotal   int64           `json:"subtotal"`
	ServiceFee int64           `json:"serviceFee"`
	Total      int64           `json:"total"`
	CardLast4  string          `json:"cardLast4"`
	PosRef     string          `json:"posRef,omitempty"`
	Items      []orderItemResp `json:"items,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}

func toOrderResp(o models.Order) orderResp {
	resp := orderResp{
		ID:         o.ID,
		Number:     o.Number,
		Status:     o.Status,
		Subtotal:   o.Subtotal,
		ServiceFee: o.ServiceFee,
		Total:      o.Total,
		CardLast4:  o.CardLast4,
		PosRef:     o.PosRef,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResp{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Extras:    item.Extras,
			Note:      item.Note,
		})
	}
	return resp
}

// CreateOrder handles a student placing a new order
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
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

		req := createOrderReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		draft := models.OrderDraft{
			StudentID:    payload.UserID,
			RestaurantID: req.RestaurantID,
			Card: models.Card{
				Number: req.CardNumber,
				Holder: req.CardHolder,
				Expiry: req.CardExpiry,
				CVV:    req.CardCVV,
			},
		}
		for _, item := range req.Items {
			draft.Items = append(draft.Items, models.OrderDraftItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Note:      item.Note,
				ExtraIDs:  item.ExtraIDs,
			})
		}

		order, err := oh.svc.Create(r.Context(), draft)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOrderResp(*order))
	}
}

// ListStudentOrders returns the student's own orders
func (oh *OrderHandler) ListStudentOrders() http.HandlerFunc {
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

		orders, err := oh.svc.ListStudentOrders(r.Context(), payload.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]orderResp, 0, len(orders))
		for _, order := range orders {
			resp = append(resp, toOrderResp(order))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ListRestaurantOrders returns the restaurant's active orders
func (oh *OrderHandler) ListRestaurantOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if payload.Role != models.RoleRestaurant {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		orders, err := oh.svc.ListActiveRestaurantOrders(r.Context(), payload.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]orderResp, 0, len(orders))
		for _, order := range orders {
			resp = append(resp, toOrderResp(order))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateOrderStatus applies a role-gated status transition
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		req := updateStatusReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.svc.UpdateStatus(r.Context(), orderID, req.Status, *payload); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type cancelOrderReq struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment,omitempty"`
}

// CancelOrder cancels an order on behalf of the restaurant
func (oh *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		req := cancelOrderReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.svc.Cancel(r.Context(), orderID, req.Reason, req.Comment, *payload); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type posRefReq struct {
	PosRef string `json:"posRef"`
}

// UpdatePosRef sets the point-of-sale reference
func (oh *OrderHandler) UpdatePosRef() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		req := posRefReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.svc.SetPosRef(r.Context(), orderID, req.PosRef, *payload); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
