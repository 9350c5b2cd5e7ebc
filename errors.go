package territory

import "errors"

var (
	// ErrInvalidZoneCount is returned when the zone count is outside [MinZoneCount, MaxZoneCount].
	ErrInvalidZoneCount = errors.New("invalid zone count")
	// ErrInvalidDimensions is returned for negative grid dimensions.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrEmptyMap is returned when an operation needs at least one region.
	ErrEmptyMap = errors.New("map has no regions")
)
