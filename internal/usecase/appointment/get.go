package appointment

import (
	"context"

	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err, "appointment_not_found")
	}
	return ap, nil
}
