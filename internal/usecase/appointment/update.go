package appointment

import (
	"context"

	"github.com/clippercut/clippercut-api/internal/audit"
	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Zero values mean "not supplied" for every field except Notes, where a
// non-nil pointer to the empty string clears the field. Partial-patch
// semantics: omitted fields keep their stored value.
type UpdateAppointmentInput struct {
	ClientID  uint
	ServiceID uint
	BarberID  uint

	Date   string
	Time   string
	Status string
	Notes  *string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo            domain.Repository
	audit           *audit.Dispatcher
	strictConflicts bool
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	strictConflicts bool,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:            repo,
		audit:           audit,
		strictConflicts: strictConflicts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err, "appointment_not_found")
	}

	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		ap.Status = string(status)
	}

	// Supplied references are re-validated exactly as in create.
	if in.ClientID != 0 {
		if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
			return nil, mapLookupErr(err, "client_not_found")
		}
		ap.ClientID = in.ClientID
	}
	if in.ServiceID != 0 {
		if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
			return nil, mapLookupErr(err, "service_not_found")
		}
		ap.ServiceID = in.ServiceID
	}
	if in.BarberID != 0 {
		if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
			return nil, mapLookupErr(err, "barber_not_found")
		}
		ap.BarberID = in.BarberID
	}

	if in.Date != "" {
		date, err := timezone.NormalizeDate(in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}
	if in.Time != "" {
		if !timezone.ValidClock(in.Time) {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		ap.Time = in.Time
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	slotChanged := in.BarberID != 0 || in.Date != "" || in.Time != ""
	if uc.strictConflicts && slotChanged {
		conflict, err := uc.repo.HasSlotConflict(ctx, ap.BarberID, ap.Date, ap.Time, ap.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.ErrBusiness("slot_conflict")
		}
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
