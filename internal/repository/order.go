package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/repository/postgres"
)

const (
	countActiveOrdersQuery = `
						SELECT COUNT(*) FROM orders
						WHERE restaurant_id = $1 AND status IN ('RECEIVED', 'PREPARING')
`
	decrementStockQuery = `
						UPDATE products SET stock = stock - $2
						WHERE id = $1 AND track_stock AND NOT is_out_of_stock AND stock >= $2
`
	nextOrderNumberQuery = `SELECT nextval('order_number_seq')`

	insertOrderQuery = `
						INSERT INTO orders (number, student_id, restaurant_id, status, subtotal, service_fee, total,
						                    card_last4, payment_status, refund_status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
						RETURNING id, created_at
`
	insertOrderItemQuery = `
						INSERT INTO order_items (order_id, product_id, name, quantity, price, extras, note)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING id
`
	selectOrderByIDQuery = `
						SELECT id, number, student_id, restaurant_id, status, subtotal, service_fee, total,
						       card_last4, payment_status, refund_status, cancel_reason, cancel_comment,
						       pos_ref, service_fee_collected, created_at, ready_at, delivered_at, completed_at, cancelled_at
						FROM orders
						WHERE id = $1
`
	selectOrdersByStudentQuery = `
						SELECT id, number, student_id, restaurant_id, status, subtotal, service_fee, total,
						       card_last4, payment_status, refund_status, cancel_reason, cancel_comment,
						       pos_ref, service_fee_collected, created_at, ready_at, delivered_at, completed_at, cancelled_at
						FROM orders
						WHERE student_id = $1
						ORDER BY created_at DESC
`
	selectActiveOrdersByRestaurantQuery = `
						SELECT id, number, student_id, restaurant_id, status, subtotal, service_fee, total,
						       card_last4, payment_status, refund_status, cancel_reason, cancel_comment,
						       pos_ref, service_fee_collected, created_at, ready_at, delivered_at, completed_at, cancelled_at
						FROM orders
						WHERE restaurant_id = $1 AND status NOT IN ('COMPLETED', 'CANCELLED')
						ORDER BY created_at
`
	selectOrderItemsQuery = `
						SELECT id, order_id, product_id, name, quantity, price, extras, note FROM order_items
						WHERE order_id = $1
						ORDER BY id
`
	cancelOrderQuery = `
						UPDATE orders
						SET status = 'CANCELLED', cancel_reason = $2, cancel_comment = $3,
						    refund_status = 'PENDING_MANUAL', cancelled_at = now()
						WHERE id = $1 AND status = $4
`
	updatePosRefQuery = `
						UPDATE orders SET pos_ref = $2
						WHERE id = $1
`
)

// updateOrderStatusQueries are the conditional transition updates keyed by
// target status, each stamping its lifecycle timestamp. The status predicate
// is the sole concurrency guard, there is no row locking.
var updateOrderStatusQueries = map[string]string{
	models.OrderStatusPreparing: `UPDATE orders SET status = $2 WHERE id = $1 AND status = $3`,
	models.OrderStatusReady:     `UPDATE orders SET status = $2, ready_at = now() WHERE id = $1 AND status = $3`,
	models.OrderStatusDelivered: `UPDATE orders SET status = $2, delivered_at = now() WHERE id = $1 AND status = $3`,
	models.OrderStatusCompleted: `UPDATE orders SET status = $2, completed_at = now() WHERE id = $1 AND status = $3`,
}

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder persists order with its items inside a single serializable
// transaction: re-checks the restaurant concurrency cap, applies conditional
// stock decrements and assigns the monotonic order number. A serialization
// failure is returned as models.ErrConflict for the caller to retry.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order, decs []models.StockDecrement, maxConcurrent int) (*models.Order, error) {
	tx, err := or.db.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if maxConcurrent > 0 {
		var active int
		if err := tx.QueryRow(ctx, countActiveOrdersQuery, order.RestaurantID).Scan(&active); err != nil {
			return nil, or.translateErr(err)
		}
		if active >= maxConcurrent {
			return nil, models.ErrRestaurantBusy
		}
	}

	for _, dec := range decs {
		cmd, err := tx.Exec(ctx, decrementStockQuery, dec.ProductID, dec.Quantity)
		if err != nil {
			return nil, or.translateErr(err)
		}
		if cmd.RowsAffected() == 0 {
			// rollback undoes decrements already applied for earlier items
			return nil, models.ErrInsufficientStock
		}
	}

	var seq uint64
	if err := tx.QueryRow(ctx, nextOrderNumberQuery).Scan(&seq); err != nil {
		return nil, or.translateErr(err)
	}
	order.Number = fmt.Sprintf("%06d", seq)

	err = tx.QueryRow(ctx, insertOrderQuery, order.Number, order.StudentID, order.RestaurantID,
		order.Status, order.Subtotal, order.ServiceFee, order.Total,
		order.CardLast4, order.PaymentStatus, order.RefundStatus).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, or.translateErr(err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		extras, err := json.Marshal(item.Extras)
		if err != nil {
			return nil, err
		}

		err = tx.QueryRow(ctx, insertOrderItemQuery, order.ID, item.ProductID, item.Name,
			item.Quantity, item.Price, extras, item.Note).Scan(&item.ID)
		if err != nil {
			return nil, or.translateErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, or.translateErr(err)
	}

	return order, nil
}

// GetOrderByID returns order with its items
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).Scan(orderFields(&order)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	items, err := or.getOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// GetOrdersByStudentID returns student orders, newest first
func (or *OrderRepository) GetOrdersByStudentID(ctx context.Context, studentID uint64) ([]models.Order, error) {
	return or.selectOrders(ctx, selectOrdersByStudentQuery, studentID)
}

// GetActiveOrdersByRestaurantID returns non-terminal restaurant orders
func (or *OrderRepository) GetActiveOrdersByRestaurantID(ctx context.Context, restaurantID uint64) ([]models.Order, error) {
	return or.selectOrders(ctx, selectActiveOrdersByRestaurantQuery, restaurantID)
}

// UpdateOrderStatus applies conditional transition "set status to X where
// current status = expected previous". Zero affected rows means a concurrent
// transition won, reported as models.ErrStaleTransition.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, id uint64, from, to string) error {
	query, ok := updateOrderStatusQueries[to]
	if !ok {
		return models.ErrStaleTransition
	}

	cmd, err := or.db.Exec(ctx, query, id, to, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrStaleTransition
	}

	return nil
}

// CancelOrder cancels order conditionally on its expected current status and
// always marks the refund as pending manual processing
func (or *OrderRepository) CancelOrder(ctx context.Context, id uint64, from, reason, comment string) error {
	cmd, err := or.db.Exec(ctx, cancelOrderQuery, id, reason, comment, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrStaleTransition
	}

	return nil
}

// UpdatePosRef sets point-of-sale reference, empty string clears it
func (or *OrderRepository) UpdatePosRef(ctx context.Context, id uint64, ref string) error {
	cmd, err := or.db.Exec(ctx, updatePosRefQuery, id, ref)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

func (or *OrderRepository) selectOrders(ctx context.Context, query string, arg any) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(orderFields(&order)...)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (or *OrderRepository) getOrderItems(ctx context.Context, orderID uint64) ([]models.OrderItem, error) {
	rows, err := or.db.Query(ctx, selectOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		item := models.OrderItem{}
		var extras []byte
		err = rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Quantity, &item.Price, &extras, &item.Note)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(extras, &item.Extras); err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// translateErr maps serialization failures to the retryable conflict error
func (or *OrderRepository) translateErr(err error) error {
	switch or.db.ErrorCode(err) {
	case postgres.ErrCodeSerializationFailure:
		return models.ErrConflict
	case postgres.ErrCodeUniqueViolation:
		return models.ErrConflictData
	}
	return err
}

func orderFields(o *models.Order) []any {
	return []any{&o.ID, &o.Number, &o.StudentID, &o.RestaurantID, &o.Status, &o.Subtotal, &o.ServiceFee,
		&o.Total, &o.CardLast4, &o.PaymentStatus, &o.RefundStatus, &o.CancelReason, &o.CancelComment,
		&o.PosRef, &o.ServiceFeeCollected, &o.CreatedAt, &o.ReadyAt, &o.DeliveredAt, &o.CompletedAt, &o.CancelledAt}
}
