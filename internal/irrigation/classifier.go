package irrigation

import (
	"fmt"

	"SmartSprinkler.dashboard/internal/models"
)

// Classifier turns sensor values into sprinkler decisions. It holds only
// the immutable threshold table and is safe for concurrent use.
type Classifier struct {
	table ThresholdTable
}

// NewClassifier creates a Classifier over table.
func NewClassifier(table ThresholdTable) *Classifier {
	return &Classifier{table: table}
}

// NewDefaultClassifier creates a Classifier over DefaultClasses.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(NewThresholdTable(DefaultClasses))
}

// Classify decides ON/OFF for every sensor. A value exactly at its
// threshold is OFF.
func (c *Classifier) Classify(values []float64) ([]models.ClassificationResult, error) {
	if len(values) != models.SensorCount {
		return nil, fmt.Errorf("classify: got %d values, want %d: %w", len(values), models.SensorCount, models.ErrInvalidInput)
	}

	results := make([]models.ClassificationResult, len(values))
	for i, v := range values {
		threshold, class, err := c.table.lookup(i)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}
		status := models.StatusOff
		if v < threshold {
			status = models.StatusOn
		}
		results[i] = models.ClassificationResult{
			Index:     i,
			Value:     v,
			Threshold: threshold,
			Class:     class,
			Status:    status,
		}
	}
	return results, nil
}

// Aggregate computes value statistics and decision tallies.
func (c *Classifier) Aggregate(values []float64) (models.AggregateStats, error) {
	summary, err := Summarize(values)
	if err != nil {
		return models.AggregateStats{}, fmt.Errorf("aggregate: %w", err)
	}
	results, err := c.Classify(values)
	if err != nil {
		return models.AggregateStats{}, fmt.Errorf("aggregate: %w", err)
	}
	return Tally(summary, results), nil
}

// Tally combines a value summary with the decisions it was computed from.
func Tally(summary models.Summary, results []models.ClassificationResult) models.AggregateStats {
	stats := models.AggregateStats{
		Mean: summary.Mean,
		Max:  summary.Max,
		Min:  summary.Min,
	}
	for _, r := range results {
		if r.Status == models.StatusOn {
			stats.CountOn++
		} else {
			stats.CountOff++
		}
	}
	stats.PercentWaterSaved = float64(stats.CountOff) * 100 / float64(models.SensorCount)
	return stats
}

// Summarize returns mean, max and min of values.
func Summarize(values []float64) (models.Summary, error) {
	if len(values) == 0 {
		return models.Summary{}, models.ErrEmptySequence
	}

	s := models.Summary{Max: values[0], Min: values[0]}
	var sum float64
	for _, v := range values {
		sum += v
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Mean = sum / float64(len(values))
	return s, nil
}
