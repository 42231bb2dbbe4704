package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/repository/postgres"
)

const (
	selectStudentQuery = `
						SELECT id, university_id, is_verified FROM students
						WHERE id = $1
`
	selectRestaurantQuery = `
						SELECT r.id, r.university_id, r.name, r.is_open, r.is_disabled, r.disabled_at,
						       r.opens_at_min, r.closes_at_min, r.max_concurrent_orders, u.is_active
						FROM restaurants r
						JOIN universities u ON u.id = r.university_id
						WHERE r.id = $1
`
	selectAppConfigQuery = `
						SELECT ordering_enabled, maintenance_mode, service_fee_enabled, service_fee
						FROM app_config WHERE id = 1
`
	selectProductsQuery = `
						SELECT id, restaurant_id, name, price, track_stock, stock, is_out_of_stock
						FROM products
						WHERE restaurant_id = $1 AND id = ANY($2)
`
	selectExtrasQuery = `
						SELECT id, product_id, name, price, kind FROM extras
						WHERE id = ANY($1)
`
	closeRestaurantQuery = `
						UPDATE restaurants SET is_open = false
						WHERE id = $1 AND is_open = true
`
)

// CatalogRepository reads the catalog and operational state owned by external flows
type CatalogRepository struct {
	db *postgres.DB
}

// NewCatalogRepository creates new CatalogRepository instance
func NewCatalogRepository(db *postgres.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetStudent returns student by id
func (cr *CatalogRepository) GetStudent(ctx context.Context, id uint64) (*models.Student, error) {
	s := models.Student{}
	err := cr.db.QueryRow(ctx, selectStudentQuery, id).Scan(&s.ID, &s.UniversityID, &s.IsVerified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &s, nil
}

// GetRestaurant returns restaurant operational state joined with university activity
func (cr *CatalogRepository) GetRestaurant(ctx context.Context, id uint64) (*models.Restaurant, error) {
	r := models.Restaurant{}
	err := cr.db.QueryRow(ctx, selectRestaurantQuery, id).Scan(&r.ID, &r.UniversityID, &r.Name,
		&r.IsOpen, &r.IsDisabled, &r.DisabledAt, &r.OpensAtMin, &r.ClosesAtMin,
		&r.MaxConcurrentOrders, &r.UniversityActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &r, nil
}

// GetAppConfig returns global configuration snapshot
func (cr *CatalogRepository) GetAppConfig(ctx context.Context) (models.AppConfig, error) {
	cfg := models.AppConfig{}
	err := cr.db.QueryRow(ctx, selectAppConfigQuery).Scan(&cfg.OrderingEnabled, &cfg.MaintenanceMode,
		&cfg.ServiceFeeEnabled, &cfg.ServiceFee)
	if err != nil {
		return models.AppConfig{}, err
	}

	return cfg, nil
}

// GetProducts returns restaurant products with given ids keyed by id
func (cr *CatalogRepository) GetProducts(ctx context.Context, restaurantID uint64, ids []uint64) (map[uint64]models.Product, error) {
	rows, err := cr.db.Query(ctx, selectProductsQuery, restaurantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := map[uint64]models.Product{}

	for rows.Next() {
		p := models.Product{}
		err = rows.Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Price, &p.TrackStock, &p.Stock, &p.IsOutOfStock)
		if err != nil {
			continue
		}
		products[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetExtras returns extras with given ids keyed by id
func (cr *CatalogRepository) GetExtras(ctx context.Context, ids []uint64) (map[uint64]models.Extra, error) {
	rows, err := cr.db.Query(ctx, selectExtrasQuery, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := map[uint64]models.Extra{}

	for rows.Next() {
		e := models.Extra{}
		err = rows.Scan(&e.ID, &e.ProductID, &e.Name, &e.Price, &e.Kind)
		if err != nil {
			continue
		}
		extras[e.ID] = e
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return extras, nil
}

// CloseRestaurant flips is_open off once closing time has passed
func (cr *CatalogRepository) CloseRestaurant(ctx context.Context, id uint64) error {
	_, err := cr.db.Exec(ctx, closeRestaurantQuery, id)
	return err
}
