package repository

import (
	"fmt"
	"math"
	"sync"

	"SmartSprinkler.dashboard/internal/models"
)

// InitialValue is the slider position every sensor starts from.
const InitialValue = 0.5

// Repository holds the current sensor inputs.
type Repository interface {
	SetValue(index int, value float64) error
	GetAll() []float64
	Readings() []models.SensorReading
	Labels() []string
}

// InputState is the in-memory store of the 20 sensor values. Every
// mutation is visible to the next read.
type InputState struct {
	mu     sync.RWMutex
	values [models.SensorCount]float64
	labels [models.SensorCount]string
}

// NewInputState creates an InputState with one label per sensor, in index
// order.
func NewInputState(labels []string) (*InputState, error) {
	if len(labels) != models.SensorCount {
		return nil, fmt.Errorf("got %d sensor labels, want %d: %w", len(labels), models.SensorCount, models.ErrInvalidInput)
	}

	s := &InputState{}
	copy(s.labels[:], labels)
	for i := range s.values {
		s.values[i] = InitialValue
	}
	return s, nil
}

// SetValue stores value for the sensor at index, clamped to [0, 1].
func (s *InputState) SetValue(index int, value float64) error {
	if index < 0 || index >= models.SensorCount {
		return fmt.Errorf("set sensor %d: %w", index, models.ErrInvalidIndex)
	}

	s.mu.Lock()
	s.values[index] = Clamp(value)
	s.mu.Unlock()
	return nil
}

// GetAll returns a copy of the values in index order.
func (s *InputState) GetAll() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]float64, models.SensorCount)
	copy(out, s.values[:])
	return out
}

// Readings returns the values paired with their labels.
func (s *InputState) Readings() []models.SensorReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SensorReading, models.SensorCount)
	for i := range out {
		out[i] = models.SensorReading{Index: i, Value: s.values[i], Label: s.labels[i]}
	}
	return out
}

// Labels returns a copy of the sensor labels.
func (s *InputState) Labels() []string {
	out := make([]string, models.SensorCount)
	copy(out, s.labels[:])
	return out
}

// Clamp bounds v to [0, 1]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
