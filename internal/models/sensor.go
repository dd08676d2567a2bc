package models

// SensorCount is the number of sensors (and parcels) on the farm.
const SensorCount = 20

// Status is the sprinkler decision for one parcel.
type Status string

const (
	StatusOn  Status = "ON"
	StatusOff Status = "OFF"
)

// ThresholdClass groups sensor indices that share the same ON/OFF cutoff.
type ThresholdClass string

const (
	ClassMoisture ThresholdClass = "moisture"
	ClassWeather  ThresholdClass = "weather"
	ClassDefault  ThresholdClass = "default"
)

// SensorReading is one slot of the current input state.
type SensorReading struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ClassificationResult is the decision for a single sensor.
type ClassificationResult struct {
	Index     int            `json:"index"`
	Value     float64        `json:"value"`
	Threshold float64        `json:"threshold"`
	Class     ThresholdClass `json:"class"`
	Status    Status         `json:"status"`
}

// AggregateStats summarises the 20 values and their decisions.
type AggregateStats struct {
	Mean              float64 `json:"mean"`
	Max               float64 `json:"max"`
	Min               float64 `json:"min"`
	CountOn           int     `json:"countOn"`
	CountOff          int     `json:"countOff"`
	PercentWaterSaved float64 `json:"percentWaterSaved"`
}

// Summary holds the value-only statistics shown before any analysis.
type Summary struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// ClassifyRequest is the body of the stateless classify endpoint.
type ClassifyRequest struct {
	Values []float64 `json:"values"`
}

// SetValueRequest is the body of PUT /api/sensors/{index}.
type SetValueRequest struct {
	Value *float64 `json:"value"`
}

// AnalysisResponse is returned by the analyze and classify endpoints.
type AnalysisResponse struct {
	Results []ClassificationResult `json:"results"`
	Stats   AggregateStats         `json:"stats"`
	Display AnalysisView           `json:"display"`
}
