package models

import "time"

// Restaurant holds the operational fields of the restaurant entity this core
// reads and writes. The rest of the entity is owned by the onboarding flow.
type Restaurant struct {
	ID                  uint64
	UniversityID        uint64
	Name                string
	IsOpen              bool
	IsDisabled          bool
	DisabledAt          *time.Time
	OpensAtMin          int // minutes since midnight
	ClosesAtMin         int
	MaxConcurrentOrders int
	UniversityActive    bool
}

// PastClosing reports whether now is past restaurant closing time
func (r Restaurant) PastClosing(now time.Time) bool {
	min := now.Hour()*60 + now.Minute()
	if r.ClosesAtMin <= r.OpensAtMin {
		// closes after midnight
		return min >= r.ClosesAtMin && min < r.OpensAtMin
	}
	return min >= r.ClosesAtMin
}

// AppConfig is global platform configuration snapshot.
// It is loaded once per operation, later changes never alter past orders.
type AppConfig struct {
	OrderingEnabled   bool
	MaintenanceMode   bool
	ServiceFeeEnabled bool
	ServiceFee        int64 // cents
}

// CurrentFee returns the service fee to burn into a new order
func (c AppConfig) CurrentFee() int64 {
	if !c.ServiceFeeEnabled {
		return 0
	}
	return c.ServiceFee
}

// Product is read-only catalog entity
type Product struct {
	ID           uint64
	RestaurantID uint64
	Name         string
	Price        int64 // cents
	TrackStock   bool
	Stock        int32
	IsOutOfStock bool
}

// Extra is read-only catalog extra, scoped to a product
type Extra struct {
	ID        uint64
	ProductID uint64
	Name      string
	Price     int64 // cents
	Kind      string
}
