package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Preload("Client").
		Preload("Service").
		Preload("Barber")

	if filter.Start != nil {
		q = q.Where("appointments.date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("appointments.date < ?", *filter.End)
	}
	if filter.Status != "" {
		q = q.Where("appointments.status = ?", string(filter.Status))
	}
	if filter.Name != "" {
		like := "%" + strings.ToLower(filter.Name) + "%"
		q = q.Where(
			"LOWER(clients.first_name) LIKE ? OR LOWER(clients.last_name) LIKE ?",
			like, like,
		)
	}
	if filter.Phone != "" {
		q = q.Where("clients.phone LIKE ?", "%"+filter.Phone+"%")
	}

	var aps []models.Appointment
	if err := q.
		Order("appointments.date ASC, appointments.time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

// SaveAppointment persists the row only; the record may carry preloaded
// associations whose foreign keys were just repointed, and those must not
// be synced back or upserted.
func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentGormRepository) ListCompletedForActiveClients(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN clients ON clients.id = appointments.client_id AND clients.is_active = ?", true).
		Where("appointments.status = ?", string(domain.StatusCompleted)).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		Order("appointments.date DESC, appointments.time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) HasSlotConflict(
	ctx context.Context,
	barberID uint,
	date time.Time,
	clock string,
	excludeID uint,
) (bool, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status <> ?",
			barberID, date, clock, string(domain.StatusCancelled),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Public booking defaults
// --------------------------------------------------

func (r *AppointmentGormRepository) FindDefaultService(
	ctx context.Context,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND LOWER(name) LIKE ?", true, "%corte%").
		Order("id ASC").
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) FindDefaultBarber(
	ctx context.Context,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where(
			"is_active = ? AND LOWER(first_name) = ? AND LOWER(last_name) = ?",
			true, "barbero", "clippercut",
		).
		Order("id ASC").
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *AppointmentGormRepository) UpsertClientByPhone(
	ctx context.Context,
	firstName string,
	email string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		// Last write wins for public submissions; last name is kept.
		client.FirstName = firstName
		client.Email = email
		if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		FirstName: firstName,
		LastName:  "",
		Phone:     phone,
		Email:     email,
		IsActive:  true,
	}
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
