package models

// FeeAggregates is per-restaurant service fee view over completed orders
type FeeAggregates struct {
	Lifetime    int64 // cents
	MonthToDate int64 // cents
	CardTotal   int64 // cents
	OrderCount  int64
}

// FeeOutstanding is sum of uncollected fees on completed, non-refunded orders
type FeeOutstanding struct {
	Total      int64 // cents
	OrderCount int
}

// FeeSummary combines aggregates with the outstanding view
type FeeSummary struct {
	Aggregates  FeeAggregates
	Outstanding FeeOutstanding
}

// FeeCollection is result of a collect operation
type FeeCollection struct {
	Amount     int64 // cents
	OrderCount int
}
