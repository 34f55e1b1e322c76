package appointment

import (
	"context"
	"time"

	"github.com/clippercut/clippercut-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// Completed appointments of active clients, newest first.
	ListCompletedForActiveClients(
		ctx context.Context,
	) ([]models.Appointment, error)

	HasSlotConflict(
		ctx context.Context,
		barberID uint,
		date time.Time,
		clock string,
		excludeID uint,
	) (bool, error)

	// -------- Public booking defaults --------
	FindDefaultService(
		ctx context.Context,
	) (*models.Service, error)

	FindDefaultBarber(
		ctx context.Context,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	UpsertClientByPhone(
		ctx context.Context,
		firstName string,
		email string,
		phone string,
	) (*models.Client, error)

	// Transaction runs fn against a repository bound to a single store
	// transaction.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
