package appointment

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/audit"
	"github.com/clippercut/clippercut-api/internal/infra/repository"
	"github.com/clippercut/clippercut-api/internal/models"
)

// newTestRepo opens an in-memory sqlite database with the full schema.
// A single pooled connection keeps the async audit writer on the same
// in-memory database as the test.
func newTestRepo(t *testing.T) (*repository.AppointmentGormRepository, *gorm.DB, *audit.Dispatcher) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Category{},
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return repository.NewAppointmentGormRepository(db), db, audit.NewDispatcher(audit.New(db))
}

func seedClient(t *testing.T, db *gorm.DB, first, last, phone string) models.Client {
	t.Helper()

	client := models.Client{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Email:     first + "@example.com",
		IsActive:  true,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func seedService(t *testing.T, db *gorm.DB, name string, active bool) models.Service {
	t.Helper()

	service := models.Service{
		Name:        name,
		Price:       150,
		DurationMin: 30,
		IsActive:    active,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	// The column default is true, so a false zero value is dropped on
	// insert and has to be written explicitly.
	if !active {
		if err := db.Model(&service).Update("is_active", false).Error; err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}
	return service
}

func seedBarber(t *testing.T, db *gorm.DB, first, last string, active bool) models.Barber {
	t.Helper()

	barber := models.Barber{
		FirstName: first,
		LastName:  last,
		IsActive:  active,
	}
	if err := db.Create(&barber).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}
	if !active {
		if err := db.Model(&barber).Update("is_active", false).Error; err != nil {
			t.Fatalf("seed barber: %v", err)
		}
	}
	return barber
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
