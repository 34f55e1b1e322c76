package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/audit"
	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

// WebBookingNotes marks appointments that came in through the public
// booking widget.
const WebBookingNotes = "Appointment created from the website"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type PublicBookingInput struct {
	Name  string
	Email string
	Phone string
	Date  string
	Time  string
}

type PublicBookingResult struct {
	Appointment models.Appointment
	ServiceName string
	BarberName  string
	ClientName  string
	Reference   string
}

// ======================================================
// USE CASE
// ======================================================

// PublicBooking is the unauthenticated booking flow. The widget offers no
// service or barber selection, so both are resolved to fixed defaults: the
// first active service whose name contains "Corte", and the active
// placeholder barber "Barbero ClipperCut" that stands for "any available
// barber". A missing default is a shop misconfiguration, not a user error.
type PublicBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PublicBooking {
	return &PublicBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PublicBooking) Execute(
	ctx context.Context,
	in PublicBookingInput,
) (*PublicBookingResult, error) {

	// Public bookings use the same calendar-day normalization as the
	// authenticated path; date and time stay independent fields.
	date, err := timezone.NormalizeDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !timezone.ValidClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	service, err := uc.repo.FindDefaultService(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("default_service_missing")
		}
		return nil, err
	}

	barber, err := uc.repo.FindDefaultBarber(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Ship the active roster with the error to aid diagnosis.
			barbers, listErr := uc.repo.ListActiveBarbers(ctx)
			if listErr != nil {
				return nil, listErr
			}
			return nil, httperr.ErrBusinessMeta("default_barber_missing", barbers)
		}
		return nil, err
	}

	// Client upsert and appointment create share one transaction so a
	// failure cannot leave an orphaned client row behind.
	var (
		client *models.Client
		ap     *models.Appointment
	)
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var txErr error
		client, txErr = tx.UpsertClientByPhone(ctx, in.Name, in.Email, in.Phone)
		if txErr != nil {
			return txErr
		}

		ap = &models.Appointment{
			PublicRef: uuid.NewString(),
			ClientID:  client.ID,
			ServiceID: service.ID,
			BarberID:  barber.ID,
			Date:      date,
			Time:      in.Time,
			Status:    string(domain.StatusPending),
			Notes:     WebBookingNotes,
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "public_booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"phone": in.Phone},
	})

	joined, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	return &PublicBookingResult{
		Appointment: *joined,
		ServiceName: service.Name,
		BarberName:  strings.TrimSpace(barber.FirstName + " " + barber.LastName),
		ClientName:  strings.TrimSpace(client.FirstName + " " + client.LastName),
		Reference:   ap.PublicRef,
	}, nil
}
