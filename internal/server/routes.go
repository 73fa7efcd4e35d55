package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"

	"tour-booking/internal/booking"
	"tour-booking/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// recentBookingsLimit caps the admin listing at the newest rows.
const recentBookingsLimit = 100

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.limiter.middleware)

	r.Get("/health", s.healthHandler)

	// Endpoints for the tour catalog
	r.Get("/api/tours", s.ListToursHandler)
	r.Get("/api/tours/{id}", s.GetTourHandler)

	// Endpoints for bookings
	r.Post("/api/bookings", s.CreateBookingHandler)
	r.Get("/api/bookings", s.ListBookingsHandler)

	// Single-page frontend
	static, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}

// healthHandler provides health information.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.db.Health())
}

// ListToursHandler returns the available catalog entries.
func (s *Server) ListToursHandler(w http.ResponseWriter, r *http.Request) {
	tours, err := s.db.GetAvailableTours()
	if err != nil {
		log.Printf("Error listing tours: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, tours)
}

// GetTourHandler returns one tour by id.
func (s *Server) GetTourHandler(w http.ResponseWriter, r *http.Request) {
	tour, err := s.db.GetTourByID(chi.URLParam(r, "id"))
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching tour: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, tour)
}

// CreateBookingHandler handles booking creation.
func (s *Server) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// an undecodable body supplies no fields
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	confirmation, err := s.bookings.CreateBooking(req)
	if errors.Is(err, booking.ErrMissingFields) {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if errors.Is(err, booking.ErrInvalidTour) {
		writeError(w, http.StatusBadRequest, "Invalid tour_id")
		return
	}
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, confirmation)
}

// ListBookingsHandler retrieves the newest bookings.
func (s *Server) ListBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.db.ListRecentBookings(recentBookingsLimit)
	if err != nil {
		log.Printf("Error retrieving bookings: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
