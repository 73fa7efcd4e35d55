package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"tour-booking/internal/models"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	// SQLite driver
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	GetAvailableTours() ([]models.Tour, error)
	GetTourByID(id string) (models.Tour, error)
	InsertBooking(booking *models.Booking) error
	ListRecentBookings(limit int) ([]models.Booking, error)
}

type service struct {
	db *sql.DB
}

// New opens (or creates) the database file at path, applies migrations and
// seeds the catalog when it is empty. The returned Service is constructed
// once at startup and injected into its consumers.
func New(path string) (Service, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}

	s := &service{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	if err := s.seedTours(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed tours: %w", err)
	}

	return s, nil
}

func (s *service) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// seedTours inserts the example catalog on first run. The catalog is
// read-only afterwards.
func (s *service) seedTours() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tours`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.Tour{
		{ID: "tour-1", Title: "Old Town Walking Tour", Description: "A guided stroll through the historic center.", Price: 30, DurationDays: 1, Available: true},
		{ID: "tour-2", Title: "Coastal Kayak Morning", Description: "Paddle along the cliffs with a local guide.", Price: 75, DurationDays: 0.5, Available: true},
		{ID: "tour-3", Title: "Mountain Trek Weekend", Description: "Two days of high trails and one night in a refuge.", Price: 120, DurationDays: 2, Available: true},
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, t := range seed {
		_, err := tx.Exec(
			`INSERT INTO tours (id, title, description, price, duration_days, available) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Description, t.Price, t.DurationDays, t.Available,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Seeded catalog with %d tours", len(seed))
	return nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	log.Println("Disconnected from database")
	return s.db.Close()
}

func (s *service) GetAvailableTours() ([]models.Tour, error) {
	query := `
		SELECT id, title, description, price, duration_days, available
		FROM tours
		WHERE available = 1
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []models.Tour
	for rows.Next() {
		var t models.Tour
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.DurationDays, &t.Available)
		if err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

func (s *service) GetTourByID(id string) (models.Tour, error) {
	query := `
		SELECT id, title, description, price, duration_days, available
		FROM tours
		WHERE id = ?
	`
	var t models.Tour
	err := s.db.QueryRow(query, id).Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.DurationDays, &t.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tour{}, ErrNotFound
	}
	if err != nil {
		return models.Tour{}, err
	}
	return t, nil
}

// InsertBooking persists one booking as a single atomic statement. The id
// and created_at are expected to be set by the caller.
func (s *service) InsertBooking(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, tour_id, customer_name, customer_email, seats, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(
		query,
		booking.ID,
		booking.TourID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.Seats,
		booking.CreatedAt,
	)
	return err
}

func (s *service) ListRecentBookings(limit int) ([]models.Booking, error) {
	query := `
		SELECT id, tour_id, customer_name, customer_email, seats, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.TourID, &b.CustomerName, &b.CustomerEmail, &b.Seats, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
