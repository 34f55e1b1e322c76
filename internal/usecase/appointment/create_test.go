package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
)

func TestCreateAppointment_OK(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte de Cabello", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		ClientID:  client.ID,
		ServiceID: service.ID,
		BarberID:  barber.ID,
		Date:      "2025-03-15",
		Time:      "10:30",
		Notes:     "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDate := time.Date(2025, 3, 15, 6, 0, 0, 0, time.UTC)
	if !ap.Date.Equal(wantDate) {
		t.Fatalf("expected normalized date %v, got %v", wantDate, ap.Date)
	}
	if ap.Time != "10:30" {
		t.Fatalf("expected time 10:30, got %q", ap.Time)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("expected default status pending, got %q", ap.Status)
	}
	if ap.PublicRef == "" {
		t.Fatalf("expected a public reference")
	}
	if ap.Client.FirstName != "Juan" || ap.Service.Name != "Corte de Cabello" || ap.Barber.FirstName != "Luis" {
		t.Fatalf("expected joined client/service/barber, got %+v", ap)
	}
}

func TestCreateAppointment_ExplicitStatus(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		ClientID:  client.ID,
		ServiceID: service.ID,
		BarberID:  barber.ID,
		Date:      "2025-03-15",
		Time:      "10:30",
		Status:    "confirmed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %q", ap.Status)
	}
}

func TestCreateAppointment_InvalidStatus(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	for _, status := range []string{"done", "PENDING", "scheduled", "x"} {
		_, err := uc.Execute(ctx, CreateAppointmentInput{
			ClientID:  client.ID,
			ServiceID: service.ID,
			BarberID:  barber.ID,
			Date:      "2025-03-15",
			Time:      "10:30",
			Status:    status,
		})
		if !httperr.IsBusiness(err, "invalid_status") {
			t.Fatalf("expected invalid_status for %q, got %v", status, err)
		}
	}

	if got := countRows(t, db, &models.Appointment{}); got != 0 {
		t.Fatalf("expected no appointment rows, got %d", got)
	}
}

func TestCreateAppointment_MissingReferences(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{
			name: "client",
			in:   CreateAppointmentInput{ClientID: 999, ServiceID: service.ID, BarberID: barber.ID, Date: "2025-03-15", Time: "10:30"},
			code: "client_not_found",
		},
		{
			name: "service",
			in:   CreateAppointmentInput{ClientID: client.ID, ServiceID: 999, BarberID: barber.ID, Date: "2025-03-15", Time: "10:30"},
			code: "service_not_found",
		},
		{
			name: "barber",
			in:   CreateAppointmentInput{ClientID: client.ID, ServiceID: service.ID, BarberID: 999, Date: "2025-03-15", Time: "10:30"},
			code: "barber_not_found",
		},
	}

	for _, tc := range cases {
		if _, err := uc.Execute(ctx, tc.in); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}

	if got := countRows(t, db, &models.Appointment{}); got != 0 {
		t.Fatalf("expected no appointment rows, got %d", got)
	}
}

func TestCreateAppointment_InvalidDateAndTime(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "not-a-date", Time: "10:30",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "25:99",
	})
	if !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}

func TestCreateAppointment_StrictConflicts(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	strict := NewCreateAppointment(repo, dispatcher, true)

	first := CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "10:30",
	}
	if _, err := strict.Execute(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := strict.Execute(ctx, first); !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	// A cancelled appointment does not block the slot.
	other := seedClient(t, db, "Ana", "Lopez", "5511111111")
	cancelled := CreateAppointmentInput{
		ClientID: other.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-16", Time: "11:00", Status: "cancelled",
	}
	if _, err := strict.Execute(ctx, cancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retaken := CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-16", Time: "11:00",
	}
	if _, err := strict.Execute(ctx, retaken); err != nil {
		t.Fatalf("expected cancelled slot to be reusable, got %v", err)
	}
}

func TestCreateAppointment_LenientAllowsDoubleBooking(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	uc := NewCreateAppointment(repo, dispatcher, false)

	in := CreateAppointmentInput{
		ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "10:30",
	}
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("expected double booking to pass without the strict rule, got %v", err)
	}

	if got := countRows(t, db, &models.Appointment{}); got != 2 {
		t.Fatalf("expected 2 appointment rows, got %d", got)
	}
}
