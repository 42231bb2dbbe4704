package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/service/mocks"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func validDraft() models.OrderDraft {
	return models.OrderDraft{
		StudentID:    1,
		RestaurantID: 2,
		Items: []models.OrderDraftItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1, ExtraIDs: []uint64{100}},
		},
		Card: models.Card{
			Number: "4539148803436467",
			Holder: "STUDENT NAME",
			Expiry: "12/30",
			CVV:    "123",
		},
	}
}

func openRestaurant() *models.Restaurant {
	return &models.Restaurant{
		ID:                  2,
		UniversityID:        1,
		IsOpen:              true,
		OpensAtMin:          8 * 60,
		ClosesAtMin:         22 * 60,
		MaxConcurrentOrders: 5,
		UniversityActive:    true,
	}
}

func catalogProducts() map[uint64]models.Product {
	return map[uint64]models.Product{
		10: {ID: 10, RestaurantID: 2, Name: "Burger", Price: 550, TrackStock: true, Stock: 4},
		11: {ID: 11, RestaurantID: 2, Name: "Fries", Price: 200},
	}
}

func newTestOrderService(repo OrderRepository, catalog CatalogRepository, notifier Notifier, pub *mocks.MockPublisher) *OrderService {
	svc := NewOrderService(repo, catalog, notifier, pub)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockOrderRepository(ctrl)
	catalogMock := mocks.NewMockCatalogRepository(ctrl)
	notifierMock := mocks.NewMockNotifier(ctrl)
	pubMock := mocks.NewMockPublisher(ctrl)

	catalogMock.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
	catalogMock.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{
		OrderingEnabled:   true,
		ServiceFeeEnabled: true,
		ServiceFee:        50,
	}, nil)
	catalogMock.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(openRestaurant(), nil)
	catalogMock.EXPECT().GetProducts(gomock.Any(), uint64(2), gomock.Any()).Return(catalogProducts(), nil)
	catalogMock.EXPECT().GetExtras(gomock.Any(), []uint64{100}).Return(map[uint64]models.Extra{
		100: {ID: 100, ProductID: 11, Name: "Cheese", Price: 75, Kind: "ADDON"},
	}, nil)

	repoMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), []models.StockDecrement{{ProductID: 10, Quantity: 2}}, 5).
		DoAndReturn(func(_ context.Context, order *models.Order, _ []models.StockDecrement, _ int) (*models.Order, error) {
			order.ID = 42
			order.Number = "000042"
			return order, nil
		})

	pubMock.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := newTestOrderService(repoMock, catalogMock, notifierMock, pubMock)
	order, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	// 2*550 + 1*(200+75), priced entirely from the catalog
	assert.Equal(t, int64(1375), order.Subtotal)
	assert.Equal(t, int64(50), order.ServiceFee)
	assert.Equal(t, order.Subtotal+order.ServiceFee, order.Total)
	assert.Equal(t, models.OrderStatusReceived, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, models.RefundStatusNone, order.RefundStatus)
	assert.Equal(t, "6467", order.CardLast4)

	wantItems := []models.OrderItem{
		{ProductID: 10, Name: "Burger", Quantity: 2, Price: 550, Extras: []models.ExtraSnapshot{}},
		{ProductID: 11, Name: "Fries", Quantity: 1, Price: 200, Extras: []models.ExtraSnapshot{
			{ID: 100, Name: "Cheese", Price: 75, Kind: "ADDON"},
		}},
	}
	if diff := cmp.Diff(wantItems, order.Items); diff != "" {
		t.Errorf("order items mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderService_Create_Gates(t *testing.T) {
	tests := []struct {
		name    string
		draft   func() models.OrderDraft
		setup   func(catalog *mocks.MockCatalogRepository)
		wantErr error
	}{
		{
			name: "empty_order",
			draft: func() models.OrderDraft {
				d := validDraft()
				d.Items = nil
				return d
			},
			setup:   func(catalog *mocks.MockCatalogRepository) {},
			wantErr: models.ErrEmptyOrder,
		},
		{
			name: "zero_quantity",
			draft: func() models.OrderDraft {
				d := validDraft()
				d.Items[0].Quantity = 0
				return d
			},
			setup:   func(catalog *mocks.MockCatalogRepository) {},
			wantErr: models.ErrInvalidQuantity,
		},
		{
			name:  "unverified_student",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1}, nil)
			},
			wantErr: models.ErrStudentNotVerified,
		},
		{
			name:  "maintenance_mode",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{
					OrderingEnabled: true,
					MaintenanceMode: true,
				}, nil)
			},
			wantErr: models.ErrMaintenanceMode,
		},
		{
			name:  "ordering_disabled",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{}, nil)
			},
			wantErr: models.ErrOrderingDisabled,
		},
		{
			name:  "restaurant_disabled",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				r := openRestaurant()
				r.IsDisabled = true
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(r, nil)
			},
			wantErr: models.ErrRestaurantDisabled,
		},
		{
			name:  "university_inactive",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				r := openRestaurant()
				r.UniversityActive = false
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(r, nil)
			},
			wantErr: models.ErrUniversityInactive,
		},
		{
			name:  "restaurant_not_open",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				r := openRestaurant()
				r.IsOpen = false
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(r, nil)
			},
			wantErr: models.ErrRestaurantClosed,
		},
		{
			name:  "past_closing_closes_restaurant",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				r := openRestaurant()
				r.ClosesAtMin = 11 * 60
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(r, nil)
				catalog.EXPECT().CloseRestaurant(gomock.Any(), uint64(2)).Return(nil)
			},
			wantErr: models.ErrRestaurantClosed,
		},
		{
			name:  "product_manually_out_of_stock",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(openRestaurant(), nil)
				products := catalogProducts()
				p := products[10]
				p.IsOutOfStock = true
				products[10] = p
				catalog.EXPECT().GetProducts(gomock.Any(), uint64(2), gomock.Any()).Return(products, nil)
				catalog.EXPECT().GetExtras(gomock.Any(), gomock.Any()).Return(map[uint64]models.Extra{
					100: {ID: 100, ProductID: 11},
				}, nil).AnyTimes()
			},
			wantErr: models.ErrProductUnavailable,
		},
		{
			name:  "extra_of_another_product",
			draft: validDraft,
			setup: func(catalog *mocks.MockCatalogRepository) {
				catalog.EXPECT().GetStudent(gomock.Any(), uint64(1)).Return(&models.Student{ID: 1, IsVerified: true}, nil)
				catalog.EXPECT().GetAppConfig(gomock.Any()).Return(models.AppConfig{OrderingEnabled: true}, nil)
				catalog.EXPECT().GetRestaurant(gomock.Any(), uint64(2)).Return(openRestaurant(), nil)
				catalog.EXPECT().GetProducts(gomock.Any(), uint64(2), gomock.Any()).Return(catalogProducts(), nil)
				catalog.EXPECT().GetExtras(gomock.Any(), gomock.Any()).Return(map[uint64]models.Extra{
					100: {ID: 100, ProductID: 10, Name: "Cheese"},
				}, nil)
			},
			wantErr: models.ErrExtraNotOfProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockOrderRepository(ctrl)
			catalogMock := mocks.NewMockCatalogRepository(ctrl)
			notifierMock := mocks.NewMockNotifier(ctrl)
			pubMock := mocks.NewMockPublisher(ctrl)
			tt.setup(catalogMock)

			svc := newTestOrderService(repoMock, catalogMock, notifierMock, pubMock)
			_, err := svc.Create(context.Background(), tt.draft())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCard(t *testing.T) {
	valid := models.Card{
		Number: "4539148803436467",
		Holder: "STUDENT NAME",
		Expiry: "12/30",
		CVV:    "123",
	}

	tests := []struct {
		name    string
		mutate  func(c *models.Card)
		wantErr error
	}{
		{name: "valid", mutate: func(c *models.Card) {}},
		{name: "spaced_number_ok", mutate: func(c *models.Card) { c.Number = "4539 1488 0343 6467" }},
		{name: "four_digit_cvv_ok", mutate: func(c *models.Card) { c.CVV = "1234" }},
		{name: "expires_this_month_ok", mutate: func(c *models.Card) { c.Expiry = "06/25" }},
		{
			name:    "luhn_failure",
			mutate:  func(c *models.Card) { c.Number = "4539148803436468" },
			wantErr: models.ErrInvalidCardNumber,
		},
		{
			name:    "too_short_number",
			mutate:  func(c *models.Card) { c.Number = "45391488034" },
			wantErr: models.ErrInvalidCardNumber,
		},
		{
			name:    "non_numeric_number",
			mutate:  func(c *models.Card) { c.Number = "45391488034364ab" },
			wantErr: models.ErrInvalidCardNumber,
		},
		{
			name:    "blank_holder",
			mutate:  func(c *models.Card) { c.Holder = "   " },
			wantErr: models.ErrInvalidCardHolder,
		},
		{
			name:    "expired_last_month",
			mutate:  func(c *models.Card) { c.Expiry = "05/25" },
			wantErr: models.ErrInvalidCardExpiry,
		},
		{
			name:    "malformed_expiry",
			mutate:  func(c *models.Card) { c.Expiry = "2030-12" },
			wantErr: models.ErrInvalidCardExpiry,
		},
		{
			name:    "short_cvv",
			mutate:  func(c *models.Card) { c.CVV = "12" },
			wantErr: models.ErrInvalidCardCVV,
		},
		{
			name:    "alpha_cvv",
			mutate:  func(c *models.Card) { c.CVV = "12a" },
			wantErr: models.ErrInvalidCardCVV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := valid
			tt.mutate(&card)
			err := validateCard(card, testNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	order := &models.Order{
		ID:           7,
		Number:       "000007",
		StudentID:    1,
		RestaurantID: 2,
		Status:       models.OrderStatusReceived,
	}

	tests := []struct {
		name    string
		target  string
		actor   models.TokenPayload
		setup   func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher)
		wantErr error
	}{
		{
			name:   "restaurant_moves_received_to_preparing",
			target: models.OrderStatusPreparing,
			actor:  models.TokenPayload{UserID: 2, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusReceived, models.OrderStatusPreparing).Return(nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name:   "student_completes_delivered_order",
			target: models.OrderStatusCompleted,
			actor:  models.TokenPayload{UserID: 1, Role: models.RoleStudent},
			setup: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				delivered := *order
				delivered.Status = models.OrderStatusDelivered
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(&delivered, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusDelivered, models.OrderStatusCompleted).Return(nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name:   "student_may_not_drive_preparing",
			target: models.OrderStatusPreparing,
			actor:  models.TokenPayload{UserID: 1, Role: models.RoleStudent},
			setup: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:   "foreign_restaurant_forbidden",
			target: models.OrderStatusPreparing,
			actor:  models.TokenPayload{UserID: 3, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:    "unknown_target_status",
			target:  "SHIPPED",
			actor:   models.TokenPayload{UserID: 2, Role: models.RoleRestaurant},
			setup:   func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {},
			wantErr: models.ErrStaleTransition,
		},
		{
			name:   "lost_race_surfaces_stale_transition",
			target: models.OrderStatusPreparing,
			actor:  models.TokenPayload{UserID: 2, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(7), models.OrderStatusReceived, models.OrderStatusPreparing).Return(models.ErrStaleTransition)
			},
			wantErr: models.ErrStaleTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockOrderRepository(ctrl)
			catalogMock := mocks.NewMockCatalogRepository(ctrl)
			notifierMock := mocks.NewMockNotifier(ctrl)
			pubMock := mocks.NewMockPublisher(ctrl)
			tt.setup(repoMock, pubMock)

			svc := newTestOrderService(repoMock, catalogMock, notifierMock, pubMock)
			err := svc.UpdateStatus(context.Background(), 7, tt.target, tt.actor)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_Cancel(t *testing.T) {
	order := &models.Order{
		ID:           7,
		Number:       "000007",
		StudentID:    1,
		RestaurantID: 2,
		Status:       models.OrderStatusReceived,
	}
	restaurant := models.TokenPayload{UserID: 2, Role: models.RoleRestaurant}

	tests := []struct {
		name    string
		reason  string
		comment string
		actor   models.TokenPayload
		setup   func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher)
		wantErr error
	}{
		{
			name:   "restaurant_cancels_received_order",
			reason: models.CancelReasonOutOfStock,
			actor:  restaurant,
			setup: func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
				repo.EXPECT().CancelOrder(gomock.Any(), uint64(7), models.OrderStatusReceived, models.CancelReasonOutOfStock, "").Return(nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				notifier.EXPECT().Notify(gomock.Any(), uint64(1), models.RoleStudent,
					models.NotificationOrderCancelled, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "other_reason_requires_comment",
			reason:  models.CancelReasonOther,
			actor:   restaurant,
			setup:   func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {},
			wantErr: models.ErrCommentRequired,
		},
		{
			name:    "internal_issue_is_reserved",
			reason:  models.CancelReasonInternalIssue,
			actor:   restaurant,
			setup:   func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {},
			wantErr: models.ErrReservedCancelReason,
		},
		{
			name:    "unknown_reason",
			reason:  "CHANGED_MIND",
			actor:   restaurant,
			setup:   func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {},
			wantErr: models.ErrInvalidCancelReason,
		},
		{
			name:    "student_may_not_cancel",
			reason:  models.CancelReasonOutOfStock,
			actor:   models.TokenPayload{UserID: 1, Role: models.RoleStudent},
			setup:   func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {},
			wantErr: models.ErrForbidden,
		},
		{
			name:   "ready_order_not_cancellable_externally",
			reason: models.CancelReasonOutOfStock,
			actor:  restaurant,
			setup: func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {
				ready := *order
				ready.Status = models.OrderStatusReady
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(&ready, nil)
			},
			wantErr: models.ErrOrderNotCancellable,
		},
		{
			name:   "cancelled_order_not_cancellable_again",
			reason: models.CancelReasonOutOfStock,
			actor:  restaurant,
			setup: func(repo *mocks.MockOrderRepository, notifier *mocks.MockNotifier, pub *mocks.MockPublisher) {
				cancelled := *order
				cancelled.Status = models.OrderStatusCancelled
				repo.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(&cancelled, nil)
			},
			wantErr: models.ErrOrderNotCancellable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockOrderRepository(ctrl)
			catalogMock := mocks.NewMockCatalogRepository(ctrl)
			notifierMock := mocks.NewMockNotifier(ctrl)
			pubMock := mocks.NewMockPublisher(ctrl)
			tt.setup(repoMock, notifierMock, pubMock)

			svc := newTestOrderService(repoMock, catalogMock, notifierMock, pubMock)
			err := svc.Cancel(context.Background(), 7, tt.reason, tt.comment, tt.actor)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_SetPosRef(t *testing.T) {
	order := &models.Order{ID: 7, StudentID: 1, RestaurantID: 2, Status: models.OrderStatusPreparing}

	t.Run("restaurant_sets_reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockOrderRepository(ctrl)
		repoMock.EXPECT().GetOrderByID(gomock.Any(), uint64(7)).Return(order, nil)
		repoMock.EXPECT().UpdatePosRef(gomock.Any(), uint64(7), "POS-121").Return(nil)

		svc := newTestOrderService(repoMock, mocks.NewMockCatalogRepository(ctrl), mocks.NewMockNotifier(ctrl), mocks.NewMockPublisher(ctrl))
		err := svc.SetPosRef(context.Background(), 7, "POS-121", models.TokenPayload{UserID: 2, Role: models.RoleRestaurant})
		assert.NoError(t, err)
	})

	t.Run("overlong_reference_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newTestOrderService(mocks.NewMockOrderRepository(ctrl), mocks.NewMockCatalogRepository(ctrl), mocks.NewMockNotifier(ctrl), mocks.NewMockPublisher(ctrl))
		long := make([]byte, models.MaxPosRefLen+1)
		for i := range long {
			long[i] = 'x'
		}
		err := svc.SetPosRef(context.Background(), 7, string(long), models.TokenPayload{UserID: 2, Role: models.RoleRestaurant})
		assert.ErrorIs(t, err, models.ErrPosRefTooLong)
	})

	t.Run("student_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newTestOrderService(mocks.NewMockOrderRepository(ctrl), mocks.NewMockCatalogRepository(ctrl), mocks.NewMockNotifier(ctrl), mocks.NewMockPublisher(ctrl))
		err := svc.SetPosRef(context.Background(), 7, "POS-121", models.TokenPayload{UserID: 1, Role: models.RoleStudent})
		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}
