package domain

import "errors"

var (
	ErrInvalidID             = errors.New("invalid quotation id")
	ErrNotFound              = errors.New("quotation not found")
	ErrInvalidSchoolName     = errors.New("school name is required")
	ErrInvalidRecipient      = errors.New("recipient is required")
	ErrInvalidPlanType       = errors.New("unknown plan type")
	ErrInvalidHeadcount      = errors.New("headcount must not be negative")
	ErrInvalidUnitPrice      = errors.New("unit price must not be negative")
	ErrInvalidServicePeriod  = errors.New("service end must not precede service start")
	ErrInvalidServiceDate    = errors.New("service dates must be YYYY-MM-DD")
	ErrInvalidDiscountLabel  = errors.New("discount label is required")
	ErrInvalidDiscountAmount = errors.New("discount amount must not be negative")
	ErrInvalidDiscountKind   = errors.New("discount kind must be fixed or percentage")
)

// IsValidationError reports whether err should map to a 400 at the API
// layer rather than a 500.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidSchoolName),
		errors.Is(err, ErrInvalidRecipient),
		errors.Is(err, ErrInvalidPlanType),
		errors.Is(err, ErrInvalidHeadcount),
		errors.Is(err, ErrInvalidUnitPrice),
		errors.Is(err, ErrInvalidServicePeriod),
		errors.Is(err, ErrInvalidServiceDate),
		errors.Is(err, ErrInvalidDiscountLabel),
		errors.Is(err, ErrInvalidDiscountAmount),
		errors.Is(err, ErrInvalidDiscountKind):
		return true
	default:
		return false
	}
}
