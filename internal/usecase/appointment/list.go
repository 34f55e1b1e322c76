package appointment

import (
	"context"

	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

type ListAppointmentsInput struct {
	StartDate string
	EndDate   string
	Status    string
	Name      string
	Phone     string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute resolves the raw query strings into a ListFilter. Both range
// bounds are normalized to the business time zone; the end bound covers
// the entire last calendar day. Results come back joined with client,
// service and barber, ordered by date then time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	var filter domain.ListFilter

	if in.StartDate != "" {
		start, err := timezone.NormalizeDate(in.StartDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.Start = &start
	}
	if in.EndDate != "" {
		end, err := timezone.EndOfDayBound(in.EndDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.End = &end
	}
	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	filter.Name = in.Name
	filter.Phone = in.Phone

	return uc.repo.ListAppointments(ctx, filter)
}
