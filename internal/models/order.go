package models

import "time"

// order status
const (
	OrderStatusReceived  = "RECEIVED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED_TO_STUDENT"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// payment status
const (
	PaymentStatusPaid = "PAID"
)

// refund status
const (
	RefundStatusNone          = "NONE"
	RefundStatusPendingManual = "PENDING_MANUAL"
	RefundStatusRefunded      = "REFUNDED"
)

// cancellation reason
const (
	CancelReasonOutOfStock    = "OUT_OF_STOCK"
	CancelReasonClosingSoon   = "CLOSING_SOON"
	CancelReasonInternalIssue = "INTERNAL_ISSUE"
	CancelReasonOther         = "OTHER"
)

// MaxPosRefLen is maximum length of point-of-sale reference
const MaxPosRefLen = 100

// transition describes single allowed order status transition
type transition struct {
	From string
	To   string
}

// orderTransitions is closed table of allowed transitions and the role driving each
var orderTransitions = map[transition]string{
	{OrderStatusReceived, OrderStatusPreparing}:  RoleRestaurant,
	{OrderStatusPreparing, OrderStatusReady}:     RoleRestaurant,
	{OrderStatusReady, OrderStatusDelivered}:     RoleRestaurant,
	{OrderStatusDelivered, OrderStatusCompleted}: RoleStudent,
}

// CanTransition reports whether role may move an order from one status to another
func CanTransition(from, to, role string) bool {
	r, ok := orderTransitions[transition{From: from, To: to}]
	return ok && r == role
}

// PrevStatus returns the expected predecessor of target status.
// It is the "expected previous" predicate of the conditional status update.
func PrevStatus(to string) (string, bool) {
	for t := range orderTransitions {
		if t.To == to {
			return t.From, true
		}
	}
	return "", false
}

// CancellableFrom reports whether an order in status can be cancelled for reason
func CancellableFrom(status, reason string) bool {
	switch status {
	case OrderStatusReceived, OrderStatusPreparing:
		return true
	case OrderStatusReady:
		return reason == CancelReasonInternalIssue
	default:
		return false
	}
}

// ValidCancelReason reports whether reason is part of the cancellation taxonomy
func ValidCancelReason(reason string) bool {
	switch reason {
	case CancelReasonOutOfStock, CancelReasonClosingSoon, CancelReasonInternalIssue, CancelReasonOther:
		return true
	}
	return false
}

// ExtraSnapshot is immutable record of an extra chosen at order time
type ExtraSnapshot struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Kind  string `json:"kind"`
}

// OrderItem is single order line. Never mutated after creation.
type OrderItem struct {
	ID        uint64
	OrderID   uint64
	ProductID uint64
	Name      string
	Quantity  int32
	Price     int64 // price per unit at order time, cents
	Extras    []ExtraSnapshot
	Note      string
}

// LineTotal returns quantity * (unit price + extras)
func (i OrderItem) LineTotal() int64 {
	extras := int64(0)
	for _, e := range i.Extras {
		extras += e.Price
	}
	return int64(i.Quantity) * (i.Price + extras)
}

// Order is order entity
type Order struct {
	ID                  uint64
	Number              string
	StudentID           uint64
	RestaurantID        uint64
	Status              string
	Subtotal            int64 // cents
	ServiceFee          int64 // cents
	Total               int64 // cents
	CardLast4           string
	PaymentStatus       string
	RefundStatus        string
	CancelReason        string
	CancelComment       string
	PosRef              string
	ServiceFeeCollected bool
	Items               []OrderItem
	CreatedAt           time.Time
	ReadyAt             *time.Time
	DeliveredAt         *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
}

// Card is submitted payment card. Only the last four digits are ever stored.
type Card struct {
	Number string
	Holder string
	Expiry string // MM/YY
	CVV    string
}

// Last4 returns last four digits of the card number
func (c Card) Last4() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}
