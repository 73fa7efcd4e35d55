package booking

import "errors"

var (
	// ErrMissingFields is returned when a required request field is empty
	// or seats is not a positive number.
	ErrMissingFields = errors.New("missing fields")

	// ErrInvalidTour is returned when the referenced tour does not exist.
	ErrInvalidTour = errors.New("invalid tour_id")
)
