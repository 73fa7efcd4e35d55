package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tour-booking/internal/booking"
	"tour-booking/internal/config"
	"tour-booking/internal/database"
	"tour-booking/internal/idgen/uuidgen"
	"tour-booking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// The store is constructed once here and injected everywhere it is used
	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	bookings := booking.New(db, uuidgen.New())
	srv := server.NewServer(cfg, db, bookings)

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Error creating listener: %v", err)
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Server started on %s...", srv.Addr)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Set up channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-stop:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shut down the server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
