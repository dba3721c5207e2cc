package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

func seedPlan(t *testing.T, store *memStore) domain.TripPlan {
	t.Helper()
	plan := domain.TripPlan{ID: "abc123", Request: domain.TripRequest{Destination: "Goa", Days: 3, Budget: 100}}
	if err := store.Save(context.Background(), plan); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return plan
}

func TestConfirm_BlankNameIsValidationFailure(t *testing.T) {
	store := newMemStore()
	seedPlan(t, store)
	b := app.NewBookingService(store)

	_, err := b.Confirm(context.Background(), "abc123", "   ")
	if !errors.Is(err, app.ErrBlankName) {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}

	plan, _ := store.Get(context.Background(), "abc123")
	if plan.Booking.Confirmed || plan.Booking.Reference != "" {
		t.Fatalf("state mutated on validation failure: %+v", plan.Booking)
	}
}

func TestConfirm_SetsStateOnce(t *testing.T) {
	store := newMemStore()
	seedPlan(t, store)
	b := app.NewBookingService(store)

	st, err := b.Confirm(context.Background(), "abc123", "Asha")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !st.Confirmed || st.Traveller != "Asha" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if !strings.HasPrefix(st.Reference, "TRIP-") || len(st.Reference) != len("TRIP-")+6 {
		t.Fatalf("bad reference: %q", st.Reference)
	}

	// confirming again keeps the original reference
	again, err := b.Confirm(context.Background(), "abc123", "Someone Else")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if again.Reference != st.Reference || again.Traveller != "Asha" {
		t.Fatalf("second confirm rewrote booking: %+v", again)
	}
}

func TestConfirm_UnknownPlan(t *testing.T) {
	b := app.NewBookingService(newMemStore())
	_, err := b.Confirm(context.Background(), "missing", "Asha")
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}
