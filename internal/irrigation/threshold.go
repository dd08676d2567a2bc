// Package irrigation decides, per parcel, whether its sprinkler should run.
package irrigation

import "SmartSprinkler.dashboard/internal/models"

// DefaultThreshold applies to every index not listed in a ClassSpec.
const DefaultThreshold = 0.5

// ClassSpec assigns one threshold to an explicit set of sensor indices.
type ClassSpec struct {
	Class     models.ThresholdClass
	Threshold float64
	Indices   []int
}

// DefaultClasses is the fixed farm layout. Membership is by index only;
// labels play no part in it.
var DefaultClasses = []ClassSpec{
	{Class: models.ClassMoisture, Threshold: 0.3, Indices: []int{0, 11, 17}},
	{Class: models.ClassWeather, Threshold: 0.7, Indices: []int{1, 6, 7}},
}

// ThresholdTable maps each sensor index to its cutoff. The zero value is
// not usable; build one with NewThresholdTable.
type ThresholdTable struct {
	thresholds [models.SensorCount]float64
	classes    [models.SensorCount]models.ThresholdClass
}

// NewThresholdTable builds a table from specs, falling back to
// DefaultThreshold. Indices outside the sensor range are ignored; when two
// specs name the same index the later one wins.
func NewThresholdTable(specs []ClassSpec) ThresholdTable {
	var t ThresholdTable
	for i := range t.thresholds {
		t.thresholds[i] = DefaultThreshold
		t.classes[i] = models.ClassDefault
	}
	for _, spec := range specs {
		for _, idx := range spec.Indices {
			if idx < 0 || idx >= models.SensorCount {
				continue
			}
			t.thresholds[idx] = spec.Threshold
			t.classes[idx] = spec.Class
		}
	}
	return t
}

// Threshold returns the cutoff for index i.
func (t ThresholdTable) Threshold(i int) (float64, error) {
	threshold, _, err := t.lookup(i)
	return threshold, err
}

// Class returns the threshold class for index i.
func (t ThresholdTable) Class(i int) (models.ThresholdClass, error) {
	_, class, err := t.lookup(i)
	return class, err
}

func (t ThresholdTable) lookup(i int) (float64, models.ThresholdClass, error) {
	if i < 0 || i >= models.SensorCount {
		return 0, "", models.ErrInvalidIndex
	}
	return t.thresholds[i], t.classes[i], nil
}
