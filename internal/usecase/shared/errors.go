package shared

import "coworking-booking/internal/pkg/errs"

var (
	ErrInvalidDate            = errs.Validation("INVALID_DATE", "date must be today or later")
	ErrInvalidDateFormat      = errs.Validation("INVALID_DATE", "date must be formatted YYYY-MM-DD")
	ErrInvalidDateRange       = errs.Validation("INVALID_DATE_RANGE", "end_date must not be before start_date")
	ErrInvalidSlotFormat      = errs.Validation("INVALID_SLOT_FORMAT", `slots must be "HH:MM - HH:MM", start on the hour and last exactly one hour`)
	ErrEmptySlots             = errs.Validation("EMPTY_SLOTS", "at least one slot must be selected")
	ErrSlotOutsideHours       = errs.Validation("SLOT_OUTSIDE_HOURS", "slot is outside the meeting room hours")
	ErrWeekdayNotAllowed      = errs.Validation("WEEKDAY_NOT_ALLOWED", "product cannot be used on this weekday")
	ErrWrongProductType       = errs.Validation("WRONG_PRODUCT_TYPE", "product type is not supported by this operation")
	ErrProductNotPublished    = errs.Validation("PRODUCT_NOT_PUBLISHED", "product is not published")
	ErrProductNotYetAvailable = errs.Validation("PRODUCT_NOT_YET_AVAILABLE", "product is not available on the requested start date")
	ErrInvalidProductSettings = errs.Validation("INVALID_PRODUCT_SETTINGS", "product settings cannot be interpreted")
	ErrInvalidCustomer        = errs.Validation("INVALID_CUSTOMER", "invalid customer details")

	ErrDuplicateSlot         = errs.Conflict("DUPLICATE_SLOT", "slot selected more than once")
	ErrOverlappingSlot       = errs.Conflict("OVERLAPPING_SLOT", "selected slots overlap")
	ErrSlotNoLongerAvailable = errs.Conflict("SLOT_NO_LONGER_AVAILABLE", "one or more selected slots are no longer available")

	ErrProductNotFound     = errs.NotFound("PRODUCT_NOT_FOUND", "product not found")
	ErrMeetingRoomNotFound = errs.NotFound("MEETING_ROOM_NOT_FOUND", "meeting room not found")
	ErrSpaceNotFound       = errs.NotFound("SPACE_NOT_FOUND", "space not found")
	ErrLegalNotFound       = errs.NotFound("LEGAL_NOT_FOUND", "space has no legal documents")

	ErrProductForbidden = errs.Authorization("PRODUCT_FORBIDDEN", "product belongs to another space")

	ErrLockBusy = errs.Concurrency("LOCK_TIMEOUT", "meeting room is busy, retry shortly")

	ErrDatabaseOperationFailed = errs.Internal("DATABASE_OPERATION_FAILED", "database operation failed")
)

// Internal categorizes err as internal unless it already carries a category.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.As(err); ok {
		return err
	}
	return ErrDatabaseOperationFailed.WithCause(err)
}
