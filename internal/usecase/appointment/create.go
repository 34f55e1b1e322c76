package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/audit"
	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	ServiceID uint
	BarberID  uint

	Date   string
	Time   string
	Status string
	Notes  string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo            domain.Repository
	audit           *audit.Dispatcher
	strictConflicts bool
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	strictConflicts bool,
) *CreateAppointment {
	return &CreateAppointment{
		repo:            repo,
		audit:           audit,
		strictConflicts: strictConflicts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Validation order is part of the contract: status enum first, then client,
// service and barber existence, then date and time shape. The first failing
// check short-circuits and nothing is written.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	status := domain.InitialStatus()
	if in.Status != "" {
		parsed, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, mapLookupErr(err, "client_not_found")
	}
	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, mapLookupErr(err, "service_not_found")
	}
	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, mapLookupErr(err, "barber_not_found")
	}

	date, err := timezone.NormalizeDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !timezone.ValidClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if uc.strictConflicts {
		conflict, err := uc.repo.HasSlotConflict(ctx, in.BarberID, date, in.Time, 0)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.ErrBusiness("slot_conflict")
		}
	}

	ap := &models.Appointment{
		PublicRef: uuid.NewString(),
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		BarberID:  in.BarberID,
		Date:      date,
		Time:      in.Time,
		Status:    string(status),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

// mapLookupErr turns a store miss into the operation's business code and
// passes every other store failure through untouched.
func mapLookupErr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
