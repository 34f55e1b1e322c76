package appointment

import (
	"context"
	"testing"

	"github.com/clippercut/clippercut-api/internal/httperr"
)

func TestListAppointments_DateRangeInclusive(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	createUC := NewCreateAppointment(repo, dispatcher, false)
	listUC := NewListAppointments(repo)

	for _, date := range []string{"2025-03-14", "2025-03-15", "2025-03-16", "2025-03-17"} {
		if _, err := createUC.Execute(ctx, CreateAppointmentInput{
			ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
			Date: date, Time: "10:00",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	aps, err := listUC.Execute(ctx, ListAppointmentsInput{
		StartDate: "2025-03-15",
		EndDate:   "2025-03-16",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both boundary days are included; the day after the end bound is not.
	if len(aps) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(aps))
	}
	if aps[0].Date.Day() != 15 || aps[1].Date.Day() != 16 {
		t.Fatalf("expected days 15 and 16, got %d and %d", aps[0].Date.Day(), aps[1].Date.Day())
	}
}

func TestListAppointments_Ordering(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	client := seedClient(t, db, "Juan", "Perez", "5512345678")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	createUC := NewCreateAppointment(repo, dispatcher, false)
	listUC := NewListAppointments(repo)

	slots := []struct{ date, clock string }{
		{"2025-03-16", "09:00"},
		{"2025-03-15", "15:00"},
		{"2025-03-15", "08:30"},
		{"2025-03-16", "08:00"},
	}
	for _, s := range slots {
		if _, err := createUC.Execute(ctx, CreateAppointmentInput{
			ClientID: client.ID, ServiceID: service.ID, BarberID: barber.ID,
			Date: s.date, Time: s.clock,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	aps, err := listUC.Execute(ctx, ListAppointmentsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 4 {
		t.Fatalf("expected 4 appointments, got %d", len(aps))
	}

	want := []struct {
		day   int
		clock string
	}{
		{15, "08:30"},
		{15, "15:00"},
		{16, "08:00"},
		{16, "09:00"},
	}
	for i, w := range want {
		if aps[i].Date.Day() != w.day || aps[i].Time != w.clock {
			t.Fatalf("position %d: expected day %d %s, got day %d %s",
				i, w.day, w.clock, aps[i].Date.Day(), aps[i].Time)
		}
	}
}

func TestListAppointments_Filters(t *testing.T) {
	repo, db, dispatcher := newTestRepo(t)
	ctx := context.Background()

	juan := seedClient(t, db, "Juan", "Perez", "5512345678")
	ana := seedClient(t, db, "Ana", "Martinez", "5599887766")
	service := seedService(t, db, "Corte", true)
	barber := seedBarber(t, db, "Luis", "Garcia", true)

	createUC := NewCreateAppointment(repo, dispatcher, false)
	listUC := NewListAppointments(repo)

	if _, err := createUC.Execute(ctx, CreateAppointmentInput{
		ClientID: juan.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "10:00", Status: "confirmed",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := createUC.Execute(ctx, CreateAppointmentInput{
		ClientID: ana.ID, ServiceID: service.ID, BarberID: barber.ID,
		Date: "2025-03-15", Time: "11:00",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Status: exact match.
	aps, err := listUC.Execute(ctx, ListAppointmentsInput{Status: "confirmed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 1 || aps[0].ClientID != juan.ID {
		t.Fatalf("expected only the confirmed appointment, got %d", len(aps))
	}

	// Name: case-insensitive substring over first OR last name.
	aps, err = listUC.Execute(ctx, ListAppointmentsInput{Name: "MARTI"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 1 || aps[0].ClientID != ana.ID {
		t.Fatalf("expected the last-name match, got %d", len(aps))
	}

	aps, err = listUC.Execute(ctx, ListAppointmentsInput{Name: "jua"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 1 || aps[0].ClientID != juan.ID {
		t.Fatalf("expected the first-name match, got %d", len(aps))
	}

	// Phone: plain substring.
	aps, err = listUC.Execute(ctx, ListAppointmentsInput{Phone: "9988"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 1 || aps[0].ClientID != ana.ID {
		t.Fatalf("expected the phone match, got %d", len(aps))
	}

	// Filters AND-combine.
	aps, err = listUC.Execute(ctx, ListAppointmentsInput{Status: "confirmed", Phone: "9988"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aps) != 0 {
		t.Fatalf("expected no rows for contradictory filters, got %d", len(aps))
	}
}

func TestListAppointments_InvalidInputs(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()

	listUC := NewListAppointments(repo)

	if _, err := listUC.Execute(ctx, ListAppointmentsInput{StartDate: "garbage"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
	if _, err := listUC.Execute(ctx, ListAppointmentsInput{EndDate: "garbage"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
	if _, err := listUC.Execute(ctx, ListAppointmentsInput{Status: "done"}); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
