package models

import "errors"

var (
	// validation
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidCardNumber    = errors.New("invalid card number")
	ErrInvalidCardExpiry    = errors.New("invalid or past card expiry")
	ErrInvalidCardCVV       = errors.New("invalid card cvv")
	ErrInvalidCardHolder    = errors.New("card holder name is empty")
	ErrCommentRequired      = errors.New("comment is required for this reason")
	ErrReservedCancelReason = errors.New("cancellation reason is reserved for internal use")
	ErrInvalidCancelReason  = errors.New("unknown cancellation reason")
	ErrInvalidReportType    = errors.New("unknown report type")
	ErrPosRefTooLong        = errors.New("pos reference is too long")

	// business-rule refusal
	ErrStudentNotVerified  = errors.New("student account is not verified")
	ErrRestaurantDisabled  = errors.New("restaurant is disabled")
	ErrRestaurantClosed    = errors.New("restaurant is closed")
	ErrUniversityInactive  = errors.New("university is not active")
	ErrOrderingDisabled    = errors.New("ordering is disabled")
	ErrMaintenanceMode     = errors.New("platform is under maintenance")
	ErrRestaurantBusy      = errors.New("restaurant has reached its order limit")
	ErrProductUnavailable  = errors.New("product is out of stock")
	ErrExtraNotOfProduct   = errors.New("extra does not belong to product")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderNotCancellable = errors.New("order can not be cancelled in its current status")

	// report anti-spam
	ErrOrderAlreadyReported = errors.New("order has already been reported by this student")
	ErrReportRateLimited    = errors.New("a report against this restaurant was already filed within 24 hours")

	// concurrency
	ErrStaleTransition = errors.New("status no longer matches the expected one")
	ErrConflictData    = errors.New("data conflicts with existing data")
	ErrConflict        = errors.New("operation conflicted with a concurrent one, retry")

	// access
	ErrDataNotFound = errors.New("data not found")
	ErrForbidden    = errors.New("operation is not allowed for this role")

	ErrInternalError = errors.New("internal error")
)
