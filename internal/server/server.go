package server

import (
	"fmt"
	"net/http"
	"time"

	"tour-booking/internal/booking"
	"tour-booking/internal/config"
	"tour-booking/internal/database"
)

type Server struct {
	db       database.Service
	bookings *booking.Manager
	limiter  *ipLimiter
}

// NewServer wires the injected stores and workflow into an http.Server.
func NewServer(cfg config.App, db database.Service, bookings *booking.Manager) *http.Server {
	s := &Server{
		db:       db,
		bookings: bookings,
		limiter:  newIPLimiter(10, 20),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
