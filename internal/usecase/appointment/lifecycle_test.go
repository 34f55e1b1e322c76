package appointment

import (
	"context"
	"testing"

	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
)

func TestGetAppointment(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	created, err := NewCreateAppointment(repo, dispatcher, false).Execute(ctx, CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewGetAppointment(repo)

	ap, err := uc.Execute(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID != created.ID {
		t.Fatalf("expected appointment %d, got %d", created.ID, ap.ID)
	}
	if ap.Client.FirstName != "Juan" || ap.Service.Name != "Corte" || ap.Barber.FirstName != "Luis" {
		t.Fatalf("expected joined associations, got %+v", ap)
	}

	if _, err := uc.Execute(ctx, created.ID+1000); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	created, err := NewCreateAppointment(repo, dispatcher, false).Execute(ctx, CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewDeleteAppointment(repo, dispatcher)

	userID := uint(7)
	if err := uc.Execute(ctx, created.ID, &userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Row is gone for real, and a second delete reports not found.
	if got := countRows(t, db, &models.Appointment{}); got != 0 {
		t.Fatalf("expected hard delete, %d rows remain", got)
	}
	if err := uc.Execute(ctx, created.ID, &userID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestLastCompletedPerClient(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	juan := seedClient(t, db, "Juan", "Perez", "5512345678")
	maria := seedClient(t, db, "Maria", "Lopez", "5511111111")
	gone := seedClient(t, db, "Pedro", "Sanchez", "5522222222")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	createUC := NewCreateAppointment(repo, dispatcher, false)

	visits := []struct {
		clientID uint
		date     string
		clock    string
		status   string
	}{
		{juan.ID, "2025-03-10", "10:00", "completed"},
		{juan.ID, "2025-03-18", "11:00", "completed"},
		{juan.ID, "2025-03-20", "12:00", "pending"},
		{maria.ID, "2025-03-18", "09:00", "completed"},
		{maria.ID, "2025-03-18", "16:00", "completed"},
		{gone.ID, "2025-03-19", "10:00", "completed"},
	}
	for _, v := range visits {
		if _, err := createUC.Execute(ctx, CreateAppointmentInput{
			ClientID: v.clientID, ServiceID: service.ID, BarberID: barber.ID,
			Date: v.date, Time: v.clock, Status: v.status,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Archived clients drop out of the report.
	if err := db.Model(&models.Client{}).Where("id = ?", gone.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("archive client: %v", err)
	}

	aps, err := NewLastCompletedPerClient(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(aps) != 2 {
		t.Fatalf("expected one appointment per active client, got %d", len(aps))
	}

	byClient := make(map[uint]models.Appointment, len(aps))
	for _, ap := range aps {
		byClient[ap.ClientID] = ap
	}

	if ap, ok := byClient[juan.ID]; !ok || ap.Date.Day() != 18 {
		t.Fatalf("expected Juan's newest completed visit on day 18, got %+v", ap)
	}
	if ap, ok := byClient[maria.ID]; !ok || ap.Time != "16:00" {
		t.Fatalf("expected Maria's latest same-day visit at 16:00, got %+v", ap)
	}
	if _, ok := byClient[gone.ID]; ok {
		t.Fatalf("expected archived client to be excluded")
	}
}
