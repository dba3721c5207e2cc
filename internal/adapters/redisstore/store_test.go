package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip_planner/internal/adapters/redisstore"
	"trip_planner/internal/domain"
)

func newStore(t *testing.T, ttl time.Duration) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisstore.NewWithClient(c, ttl), mr
}

func samplePlan() domain.TripPlan {
	return domain.TripPlan{
		ID:        "abc123",
		Request:   domain.TripRequest{Destination: "Goa", Days: 3, Budget: 20000},
		Itinerary: "Day 1: Beaches",
		Budget:    domain.SplitBudget(20000),
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s, _ := newStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Save(ctx, samplePlan()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Request.Destination != "Goa" || got.Itinerary != "Day 1: Beaches" {
		t.Fatalf("round trip mangled plan: %+v", got)
	}
	if got.Booking.Confirmed {
		t.Fatalf("fresh plan booked: %+v", got.Booking)
	}
}

func TestGetMissing(t *testing.T) {
	s, _ := newStore(t, time.Hour)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestPlanExpires(t *testing.T) {
	s, mr := newStore(t, time.Minute)
	ctx := context.Background()

	if err := s.Save(ctx, samplePlan()); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := s.Get(ctx, "abc123"); !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestUpdateKeepsRemainingTTL(t *testing.T) {
	s, mr := newStore(t, time.Minute)
	ctx := context.Background()

	plan := samplePlan()
	if err := s.Save(ctx, plan); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.FastForward(30 * time.Second)

	plan.Booking = domain.BookingState{Confirmed: true, Traveller: "Asha", Reference: "TRIP-AB12CD"}
	if err := s.Update(ctx, plan); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Booking.Confirmed || got.Booking.Reference != "TRIP-AB12CD" {
		t.Fatalf("booking not persisted: %+v", got.Booking)
	}

	// the update must not have reset the clock
	mr.FastForward(45 * time.Second)
	if _, err := s.Get(ctx, "abc123"); !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("TTL extended by update: %v", err)
	}
}
