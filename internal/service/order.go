package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	luhn "github.com/phedde/luhn-algorithm"
	"go.uber.org/zap"

	"github.com/campuseats/campuseats/internal/logger"
	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/realtime"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder persists order and items atomically, applying stock
	// decrements and the concurrency cap inside a serializable transaction
	CreateOrder(ctx context.Context, order *models.Order, decs []models.StockDecrement, maxConcurrent int) (*models.Order, error)
	// GetOrderByID returns order with its items
	GetOrderByID(ctx context.Context, id uint64) (*models.Order, error)
	// GetOrdersByStudentID returns student orders
	GetOrdersByStudentID(ctx context.Context, studentID uint64) ([]models.Order, error)
	// GetActiveOrdersByRestaurantID returns non-terminal restaurant orders
	GetActiveOrdersByRestaurantID(ctx context.Context, restaurantID uint64) ([]models.Order, error)
	// UpdateOrderStatus applies conditional status transition
	UpdateOrderStatus(ctx context.Context, id uint64, from, to string) error
	// CancelOrder cancels order conditionally on its expected status
	CancelOrder(ctx context.Context, id uint64, from, reason, comment string) error
	// UpdatePosRef sets point-of-sale reference
	UpdatePosRef(ctx context.Context, id uint64, ref string) error
}

// CatalogRepository is interface for the read-only catalog and operational
// state owned by external flows
type CatalogRepository interface {
	GetStudent(ctx context.Context, id uint64) (*models.Student, error)
	GetRestaurant(ctx context.Context, id uint64) (*models.Restaurant, error)
	GetAppConfig(ctx context.Context) (models.AppConfig, error)
	GetProducts(ctx context.Context, restaurantID uint64, ids []uint64) (map[uint64]models.Product, error)
	GetExtras(ctx context.Context, ids []uint64) (map[uint64]models.Extra, error)
	CloseRestaurant(ctx context.Context, id uint64) error
}

// Notifier persists notifications and pushes them out, implemented by NotificationService
type Notifier interface {
	Notify(ctx context.Context, recipientID uint64, role, notifType, title, message string) error
	NotifyAdmins(ctx context.Context, notifType, title, message string) error
}

// OrderService implements the order lifecycle
type OrderService struct {
	repo     OrderRepository
	catalog  CatalogRepository
	notifier Notifier
	pub      realtime.Publisher
	now      func() time.Time
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, catalog CatalogRepository, notifier Notifier, pub realtime.Publisher) *OrderService {
	return &OrderService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		pub:      pub,
		now:      time.Now,
	}
}

// orderEvent is payload of order:new and order:statusChanged events
type orderEvent struct {
	OrderID uint64 `json:"orderId"`
	Number  string `json:"number"`
	Status  string `json:"status"`
}

// Create prices and persists a new order. Prices and extras are always taken
// from the live catalog, never from the submission, and the service fee is
// burned into the order so later config changes can not alter it.
func (os *OrderService) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	if len(draft.Items) == 0 {
		return nil, models.ErrEmptyOrder
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return nil, models.ErrInvalidQuantity
		}
	}
	if err := validateCard(draft.Card, os.now()); err != nil {
		return nil, err
	}

	student, err := os.catalog.GetStudent(ctx, draft.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.IsVerified {
		return nil, models.ErrStudentNotVerified
	}

	cfg, err := os.catalog.GetAppConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.MaintenanceMode {
		return nil, models.ErrMaintenanceMode
	}
	if !cfg.OrderingEnabled {
		return nil, models.ErrOrderingDisabled
	}

	restaurant, err := os.catalog.GetRestaurant(ctx, draft.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.IsDisabled {
		return nil, models.ErrRestaurantDisabled
	}
	if !restaurant.UniversityActive {
		return nil, models.ErrUniversityInactive
	}
	if restaurant.PastClosing(os.now()) {
		if err := os.catalog.CloseRestaurant(ctx, restaurant.ID); err != nil {
			logger.Log.Error("close restaurant past closing time",
				zap.Uint64("restaurant", restaurant.ID), zap.Error(err))
		}
		return nil, models.ErrRestaurantClosed
	}
	if !restaurant.IsOpen {
		return nil, models.ErrRestaurantClosed
	}

	items, decs, err := os.priceItems(ctx, draft)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	fee := cfg.CurrentFee()

	order := &models.Order{
		StudentID:     draft.StudentID,
		RestaurantID:  draft.RestaurantID,
		Status:        models.OrderStatusReceived,
		Subtotal:      subtotal,
		ServiceFee:    fee,
		Total:         subtotal + fee,
		CardLast4:     draft.Card.Last4(),
		PaymentStatus: models.PaymentStatusPaid,
		RefundStatus:  models.RefundStatusNone,
		Items:         items,
	}

	order, err = os.repo.CreateOrder(ctx, order, decs, restaurant.MaxConcurrentOrders)
	if err != nil {
		return nil, err
	}

	os.publish(ctx, realtime.RestaurantRoom(order.RestaurantID), realtime.Event{
		Name:    realtime.EventOrderNew,
		Payload: orderEvent{OrderID: order.ID, Number: order.Number, Status: order.Status},
	})

	return order, nil
}

// UpdateStatus applies a role-gated transition as a conditional update. A
// racing duplicate request loses on the status predicate and gets a stale
// transition error, no extra locking is involved.
func (os *OrderService) UpdateStatus(ctx context.Context, orderID uint64, target string, actor models.TokenPayload) error {
	from, ok := models.PrevStatus(target)
	if !ok {
		return models.ErrStaleTransition
	}

	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := os.authorize(order, actor); err != nil {
		return err
	}
	if !models.CanTransition(from, target, actor.Role) {
		return models.ErrForbidden
	}

	if err := os.repo.UpdateOrderStatus(ctx, orderID, from, target); err != nil {
		return err
	}

	os.publishStatusChange(ctx, order, target)

	return nil
}

// Cancel cancels the order on behalf of the restaurant. The internal issue
// reason is reserved and rejected from external submission, and a comment is
// required when the reason is "other". Refunds are always left to manual
// processing.
func (os *OrderService) Cancel(ctx context.Context, orderID uint64, reason, comment string, actor models.TokenPayload) error {
	if actor.Role != models.RoleRestaurant {
		return models.ErrForbidden
	}
	if !models.ValidCancelReason(reason) {
		return models.ErrInvalidCancelReason
	}
	if reason == models.CancelReasonInternalIssue {
		return models.ErrReservedCancelReason
	}
	if reason == models.CancelReasonOther && strings.TrimSpace(comment) == "" {
		return models.ErrCommentRequired
	}

	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := os.authorize(order, actor); err != nil {
		return err
	}
	if !models.CancellableFrom(order.Status, reason) {
		return models.ErrOrderNotCancellable
	}

	if err := os.repo.CancelOrder(ctx, orderID, order.Status, reason, comment); err != nil {
		return err
	}

	os.publishStatusChange(ctx, order, models.OrderStatusCancelled)

	if err := os.notifier.Notify(ctx, order.StudentID, models.RoleStudent,
		models.NotificationOrderCancelled, "Order cancelled",
		fmt.Sprintf("Order %s was cancelled by the restaurant", order.Number)); err != nil {
		logger.Log.Error("notify order cancellation", zap.Uint64("order", orderID), zap.Error(err))
	}

	return nil
}

// SetPosRef updates the point-of-sale reference, empty string clears it
func (os *OrderService) SetPosRef(ctx context.Context, orderID uint64, ref string, actor models.TokenPayload) error {
	if actor.Role != models.RoleRestaurant {
		return models.ErrForbidden
	}
	if len(ref) > models.MaxPosRefLen {
		return models.ErrPosRefTooLong
	}

	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := os.authorize(order, actor); err != nil {
		return err
	}

	return os.repo.UpdatePosRef(ctx, orderID, ref)
}

// ListStudentOrders returns the student's own orders
func (os *OrderService) ListStudentOrders(ctx context.Context, studentID uint64) ([]models.Order, error) {
	return os.repo.GetOrdersByStudentID(ctx, studentID)
}

// ListActiveRestaurantOrders returns the restaurant's non-terminal orders
func (os *OrderService) ListActiveRestaurantOrders(ctx context.Context, restaurantID uint64) ([]models.Order, error) {
	return os.repo.GetActiveOrdersByRestaurantID(ctx, restaurantID)
}

// priceItems prices every submitted line from the live catalog, checking that
// extras belong to their product and that no product is manually out of stock
func (os *OrderService) priceItems(ctx context.Context, draft models.OrderDraft) ([]models.OrderItem, []models.StockDecrement, error) {
	productIDs := make([]uint64, 0, len(draft.Items))
	var extraIDs []uint64
	for _, item := range draft.Items {
		productIDs = append(productIDs, item.ProductID)
		extraIDs = append(extraIDs, item.ExtraIDs...)
	}

	products, err := os.catalog.GetProducts(ctx, draft.RestaurantID, productIDs)
	if err != nil {
		return nil, nil, err
	}

	extras := map[uint64]models.Extra{}
	if len(extraIDs) > 0 {
		extras, err = os.catalog.GetExtras(ctx, extraIDs)
		if err != nil {
			return nil, nil, err
		}
	}

	items := make([]models.OrderItem, 0, len(draft.Items))
	decrements := map[uint64]int32{}

	for _, draftItem := range draft.Items {
		product, ok := products[draftItem.ProductID]
		if !ok {
			return nil, nil, models.ErrDataNotFound
		}
		if product.IsOutOfStock {
			return nil, nil, models.ErrProductUnavailable
		}

		snapshots := make([]models.ExtraSnapshot, 0, len(draftItem.ExtraIDs))
		for _, extraID := range draftItem.ExtraIDs {
			extra, ok := extras[extraID]
			if !ok {
				return nil, nil, models.ErrDataNotFound
			}
			if extra.ProductID != product.ID {
				return nil, nil, models.ErrExtraNotOfProduct
			}
			snapshots = append(snapshots, models.ExtraSnapshot{
				ID:    extra.ID,
				Name:  extra.Name,
				Price: extra.Price,
				Kind:  extra.Kind,
			})
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  draftItem.Quantity,
			Price:     product.Price,
			Extras:    snapshots,
			Note:      draftItem.Note,
		})

		if product.TrackStock {
			decrements[product.ID] += draftItem.Quantity
		}
	}

	decs := make([]models.StockDecrement, 0, len(decrements))
	for _, item := range items {
		if qty, ok := decrements[item.ProductID]; ok {
			decs = append(decs, models.StockDecrement{ProductID: item.ProductID, Quantity: qty})
			delete(decrements, item.ProductID)
		}
	}

	return items, decs, nil
}

func (os *OrderService) authorize(order *models.Order, actor models.TokenPayload) error {
	switch actor.Role {
	case models.RoleRestaurant:
		if order.RestaurantID != actor.UserID {
			return models.ErrForbidden
		}
	case models.RoleStudent:
		if order.StudentID != actor.UserID {
			return models.ErrForbidden
		}
	default:
		return models.ErrForbidden
	}
	return nil
}

// publishStatusChange pushes the change to both the restaurant and the owning student
func (os *OrderService) publishStatusChange(ctx context.Context, order *models.Order, status string) {
	event := realtime.Event{
		Name:    realtime.EventOrderStatusChange,
		Payload: orderEvent{OrderID: order.ID, Number: order.Number, Status: status},
	}
	os.publish(ctx, realtime.RestaurantRoom(order.RestaurantID), event)
	os.publish(ctx, realtime.StudentRoom(order.StudentID), event)
}

func (os *OrderService) publish(ctx context.Context, room realtime.Room, event realtime.Event) {
	if err := os.pub.Publish(ctx, room, event); err != nil {
		logger.Log.Error("publish realtime event",
			zap.String("room", string(room)), zap.String("event", event.Name), zap.Error(err))
	}
}

// validateCard fully validates the submitted card, only the last four digits
// of the number survive validation
func validateCard(card models.Card, now time.Time) error {
	digits := strings.ReplaceAll(card.Number, " ", "")
	if len(digits) < 12 || len(digits) > 19 {
		return models.ErrInvalidCardNumber
	}
	num, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return models.ErrInvalidCardNumber
	}
	// check card number using Luhn algorithm
	if ok := luhn.IsValid(num); !ok {
		return models.ErrInvalidCardNumber
	}

	if strings.TrimSpace(card.Holder) == "" {
		return models.ErrInvalidCardHolder
	}

	expiry, err := time.Parse("01/06", card.Expiry)
	if err != nil {
		return models.ErrInvalidCardExpiry
	}
	// valid through the end of the expiry month
	if !expiry.AddDate(0, 1, 0).After(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)) {
		return models.ErrInvalidCardExpiry
	}

	if len(card.CVV) < 3 || len(card.CVV) > 4 {
		return models.ErrInvalidCardCVV
	}
	if _, err := strconv.Atoi(card.CVV); err != nil {
		return models.ErrInvalidCardCVV
	}

	return nil
}
