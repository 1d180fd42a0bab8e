package world

import "errors"

var (
	// ErrInvalidGrid is returned for an empty or non-rectangular base grid
	ErrInvalidGrid = errors.New("invalid collision grid")

	// ErrInvalidZone is returned for a zone with non-positive size or an unknown trigger
	ErrInvalidZone = errors.New("invalid zone")

	// ErrMissingPayload is returned when a zone carries no content
	ErrMissingPayload = errors.New("zone has no payload")

	// ErrFootprintOutOfBounds is returned when a footprint covers no cell of the map
	ErrFootprintOutOfBounds = errors.New("footprint outside map bounds")
)
