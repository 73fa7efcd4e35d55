package booking

import (
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/database"
	"tour-booking/internal/models"
)

type idGenerator interface {
	NewID() string
}

type catalogReader interface {
	GetTourByID(id string) (models.Tour, error)
}

type bookingWriter interface {
	InsertBooking(booking *models.Booking) error
}

type storage interface {
	catalogReader
	bookingWriter
}

// Request carries the caller-supplied booking fields. Everything else on a
// booking record is assigned by the Manager.
type Request struct {
	TourID        string `json:"tour_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Seats         int    `json:"seats"`
}

// Confirmation embeds the resolved tour so the caller needs no second lookup.
type Confirmation struct {
	ID        string      `json:"id"`
	Tour      models.Tour `json:"tour"`
	CreatedAt time.Time   `json:"created_at"`
}

// Manager owns the booking creation workflow.
type Manager struct {
	storage storage
	idGen   idGenerator
}

func New(storage storage, idGen idGenerator) *Manager {
	return &Manager{
		storage: storage,
		idGen:   idGen,
	}
}

func (r *Request) validate() error {
	if r.TourID == "" || r.CustomerName == "" || r.CustomerEmail == "" || r.Seats <= 0 {
		return ErrMissingFields
	}
	return nil
}

// CreateBooking validates the request, verifies the tour reference exists,
// then persists the booking with a generated id and UTC timestamp as one
// write. Validation failures never touch the booking table. The tour's
// available flag is intentionally not checked here.
func (m *Manager) CreateBooking(req Request) (*Confirmation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	tour, err := m.storage.GetTourByID(req.TourID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidTour
	}
	if err != nil {
		return nil, fmt.Errorf("resolve tour %q: %w", req.TourID, err)
	}

	record := &models.Booking{
		ID:            m.idGen.NewID(),
		TourID:        tour.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Seats:         req.Seats,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.storage.InsertBooking(record); err != nil {
		return nil, fmt.Errorf("save booking to storage: %w", err)
	}

	return &Confirmation{
		ID:        record.ID,
		Tour:      tour,
		CreatedAt: record.CreatedAt,
	}, nil
}
