package booking

// ===============================
// Booking Status
// ===============================

// A booking is either Active or Cancelled. Cancelled is terminal; the only
// way back to Active is an update against the same booking id.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCancelled Status = "Cancelled"
)

func IsActive(s string) bool {
	return Status(s) == StatusActive
}

func InitialStatus() Status {
	return StatusActive
}
