package booking

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// InitialStatus is the only status the factory ever writes.
func InitialStatus() Status {
	return StatusPending
}

// Status updates are free-form: the dashboard may write any non-empty
// string and no transition rules are enforced. Known values above exist
// for callers that want the canonical names.
