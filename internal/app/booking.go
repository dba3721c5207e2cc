package app

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/domain"
)

// ErrBlankName is the booking-time validation failure: nothing is mutated and
// no reference code is minted.
var ErrBlankName = errors.New("traveller name is required")

// BookingService flips a plan's BookingState at most once. Confirming an
// already-booked plan returns the existing state unchanged, so the demo
// reference survives page refreshes.
type BookingService struct {
	store domain.PlanStore
}

func NewBookingService(s domain.PlanStore) *BookingService {
	return &BookingService{store: s}
}

func (s *BookingService) Confirm(ctx context.Context, planID, traveller string) (domain.BookingState, error) {
	if strings.TrimSpace(traveller) == "" {
		return domain.BookingState{}, ErrBlankName
	}

	plan, err := s.store.Get(ctx, planID)
	if err != nil {
		return domain.BookingState{}, err
	}
	if plan.Booking.Confirmed {
		return plan.Booking, nil
	}

	plan.Booking = domain.BookingState{
		Confirmed: true,
		Traveller: strings.TrimSpace(traveller),
		Reference: newBookingReference(),
	}
	if err := s.store.Update(ctx, plan); err != nil {
		return domain.BookingState{}, err
	}
	log.Info().Str("plan", planID).Str("reference", plan.Booking.Reference).Msg("booking confirmed")
	return plan.Booking, nil
}

// newBookingReference mints codes like TRIP-A1B2C3.
func newBookingReference() string {
	var b [3]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "TRIP-000000"
	}
	return "TRIP-" + strings.ToUpper(hex.EncodeToString(b[:]))
}
