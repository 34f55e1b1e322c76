package appointment

import "github.com/clippercut/clippercut-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a caller-supplied status against the closed enum.
// Anything else, including the empty string, is rejected; callers that
// treat "" as "not supplied" must check for it before calling.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusPending
}
