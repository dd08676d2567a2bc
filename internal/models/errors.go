package models

import "errors"

var (
	// ErrInvalidIndex is returned when a sensor index is outside [0, SensorCount).
	ErrInvalidIndex = errors.New("invalid sensor index")
	// ErrInvalidInput is returned when a value sequence does not hold exactly SensorCount elements.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptySequence is returned when statistics are requested over no values.
	ErrEmptySequence = errors.New("empty sequence")
)
