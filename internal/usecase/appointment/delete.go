package appointment

import (
	"context"

	"github.com/clippercut/clippercut-api/internal/audit"
	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute physically removes the row. There is no soft-delete for
// appointments.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	userID *uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return mapLookupErr(err, "appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
