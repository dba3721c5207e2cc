// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/pdfdoc"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

type Handlers struct {
	Planner *app.Planner
	Booking *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/trips", h.createTrip)
	s.mux.Get("/v1/trips/{id}", h.getTrip)
	s.mux.Get("/v1/trips/{id}/pdf", h.exportPDF)
	s.mux.Post("/v1/trips/{id}/booking", h.confirmBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func isValidationErr(err error) bool {
	return errors.Is(err, domain.ErrEmptyDestination) ||
		errors.Is(err, domain.ErrDaysOutOfRange) ||
		errors.Is(err, domain.ErrBudgetNotPositive)
}

func (h *Handlers) createTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	plan, err := h.Planner.Generate(r.Context(), req)
	switch {
	case isValidationErr(err):
		writeProblem(w, http.StatusBadRequest, "Invalid Trip Request", err.Error())
		return
	case err != nil:
		// GenerationFailure: surfaced, cycle aborted, nothing stored.
		log.Error().Err(err).Str("destination", req.Destination).Msg("generation failed")
		writeProblem(w, http.StatusBadGateway, "Generation Failed", "the itinerary service did not produce a plan")
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

func (h *Handlers) getTrip(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Planner.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "trip plan not found or expired")
		return
	}

	etag, body := calcETagAndBody(plan)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getTrip body")
	}
}

func (h *Handlers) exportPDF(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Planner.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "trip plan not found or expired")
		return
	}

	b, filename, err := pdfdoc.Export(plan.Request.Destination, plan.Itinerary)
	if err != nil {
		log.Error().Err(err).Str("plan", plan.ID).Msg("pdf export failed")
		writeProblem(w, http.StatusInternalServerError, "Export Failed", "could not render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Error().Err(err).Msg("failed to write PDF body")
	}
}

type bookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"` // accepted, demo booking never sends mail
}

func (h *Handlers) confirmBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	state, err := h.Booking.Confirm(r.Context(), chi.URLParam(r, "id"), req.Name)
	switch {
	case errors.Is(err, app.ErrBlankName):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Booking", "please enter your name to confirm booking")
		return
	case errors.Is(err, domain.ErrPlanNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "trip plan not found or expired")
		return
	case err != nil:
		log.Error().Err(err).Msg("booking failed")
		writeProblem(w, http.StatusInternalServerError, "Booking Failed", "could not confirm booking")
		return
	}

	writeJSON(w, http.StatusOK, state)
}
