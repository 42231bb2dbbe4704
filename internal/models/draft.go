package models

// OrderDraftItem is single submitted order line, prices are never taken from it
type OrderDraftItem struct {
	ProductID uint64
	Quantity  int32
	Note      string
	ExtraIDs  []uint64
}

// OrderDraft is validated order submission before pricing
type OrderDraft struct {
	StudentID    uint64
	RestaurantID uint64
	Items        []OrderDraftItem
	Card         Card
}

// StockDecrement is requested conditional stock decrement for one product
type StockDecrement struct {
	ProductID uint64
	Quantity  int32
}

// ReportDraft is submitted report before persistence
type ReportDraft struct {
	StudentID    uint64
	RestaurantID uint64
	OrderID      *uint64
	Type         string
	Comment      string
}
