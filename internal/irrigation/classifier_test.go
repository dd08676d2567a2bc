package irrigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartSprinkler.dashboard/internal/models"
)

func filled(v float64) []float64 {
	values := make([]float64, models.SensorCount)
	for i := range values {
		values[i] = v
	}
	return values
}

func TestThresholdTable_Defaults(t *testing.T) {
	table := NewThresholdTable(DefaultClasses)

	tests := []struct {
		indices   []int
		threshold float64
		class     models.ThresholdClass
	}{
		{[]int{0, 11, 17}, 0.3, models.ClassMoisture},
		{[]int{1, 6, 7}, 0.7, models.ClassWeather},
		{[]int{2, 3, 4, 5, 8, 9, 10, 12, 13, 14, 15, 16, 18, 19}, 0.5, models.ClassDefault},
	}
	for _, tt := range tests {
		for _, i := range tt.indices {
			got, err := table.Threshold(i)
			require.NoError(t, err)
			assert.Equal(t, tt.threshold, got, "index %d", i)

			class, err := table.Class(i)
			require.NoError(t, err)
			assert.Equal(t, tt.class, class, "index %d", i)
		}
	}
}

func TestThresholdTable_OutOfRange(t *testing.T) {
	table := NewThresholdTable(DefaultClasses)

	_, err := table.Threshold(-1)
	assert.ErrorIs(t, err, models.ErrInvalidIndex)
	_, err = table.Class(models.SensorCount)
	assert.ErrorIs(t, err, models.ErrInvalidIndex)
}

func TestThresholdTable_IgnoresUnknownIndices(t *testing.T) {
	table := NewThresholdTable([]ClassSpec{{Class: models.ClassMoisture, Threshold: 0.1, Indices: []int{-3, 2, 40}}})

	got, err := table.Threshold(2)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)

	got, err = table.Threshold(3)
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, got)
}

func TestClassify_Boundaries(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name    string
		indices []int
		below   float64
		at      float64
	}{
		{"moisture", []int{0, 11, 17}, 0.29, 0.30},
		{"weather", []int{1, 6, 7}, 0.69, 0.70},
		{"default", []int{2, 3, 4, 5, 8, 9, 10, 12, 13, 14, 15, 16, 18, 19}, 0.49, 0.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, i := range tt.indices {
				values := filled(1.0)

				values[i] = tt.below
				results, err := c.Classify(values)
				require.NoError(t, err)
				assert.Equal(t, models.StatusOn, results[i].Status, "index %d at %.2f", i, tt.below)

				values[i] = tt.at
				results, err = c.Classify(values)
				require.NoError(t, err)
				assert.Equal(t, models.StatusOff, results[i].Status, "index %d at %.2f", i, tt.at)
			}
		})
	}
}

func TestClassify_PreservesOrder(t *testing.T) {
	c := NewDefaultClassifier()
	values := make([]float64, models.SensorCount)
	for i := range values {
		values[i] = float64(i) / 20
	}

	results, err := c.Classify(values)
	require.NoError(t, err)
	require.Len(t, results, models.SensorCount)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, values[i], r.Value)
	}
}

func TestClassify_WrongLength(t *testing.T) {
	c := NewDefaultClassifier()

	for _, n := range []int{0, 19, 21} {
		results, err := c.Classify(make([]float64, n))
		assert.ErrorIs(t, err, models.ErrInvalidInput, "length %d", n)
		assert.Nil(t, results)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewDefaultClassifier()
	values := filled(0.42)
	values[0] = 0.1
	values[7] = 0.9

	first, err := c.Classify(values)
	require.NoError(t, err)
	second, err := c.Classify(values)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregate_AllHigh(t *testing.T) {
	stats, err := NewDefaultClassifier().Aggregate(filled(1.0))
	require.NoError(t, err)

	assert.Equal(t, 0, stats.CountOn)
	assert.Equal(t, 20, stats.CountOff)
	assert.Equal(t, 100.0, stats.PercentWaterSaved)
	assert.Equal(t, 1.0, stats.Mean)
}

func TestAggregate_AllZero(t *testing.T) {
	stats, err := NewDefaultClassifier().Aggregate(filled(0.0))
	require.NoError(t, err)

	assert.Equal(t, 20, stats.CountOn)
	assert.Equal(t, 0, stats.CountOff)
	assert.Equal(t, 0.0, stats.PercentWaterSaved)
	assert.Equal(t, 0.0, stats.Mean)
	assert.Equal(t, 0.0, stats.Max)
	assert.Equal(t, 0.0, stats.Min)
}

func TestAnalyze_FarmExample(t *testing.T) {
	values := []float64{
		0.2, 0.8, 0.5, 0.5, 0.5, 0.5, 0.8, 0.8, 0.5, 0.5,
		0.5, 0.2, 0.5, 0.5, 0.5, 0.5, 0.5, 0.2, 0.5, 0.5,
	}
	c := NewDefaultClassifier()

	results, err := c.Classify(values)
	require.NoError(t, err)
	for _, i := range []int{0, 11, 17} {
		assert.Equal(t, models.StatusOn, results[i].Status, "index %d", i)
	}
	for _, i := range []int{1, 6, 7} {
		assert.Equal(t, models.StatusOff, results[i].Status, "index %d", i)
	}
	for _, i := range []int{2, 3, 4, 5, 8, 9, 10, 12, 13, 14, 15, 16, 18, 19} {
		assert.Equal(t, models.StatusOff, results[i].Status, "index %d", i)
	}

	stats, err := c.Aggregate(values)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CountOn)
	assert.Equal(t, 17, stats.CountOff)
	assert.Equal(t, 85.0, stats.PercentWaterSaved)
	assert.InDelta(t, 0.5, stats.Mean, 1e-9)
	assert.Equal(t, 0.8, stats.Max)
	assert.Equal(t, 0.2, stats.Min)
}

func TestAggregate_Errors(t *testing.T) {
	c := NewDefaultClassifier()

	_, err := c.Aggregate(nil)
	assert.ErrorIs(t, err, models.ErrEmptySequence)

	_, err = c.Aggregate(make([]float64, 19))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{0.25, 0.75, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Mean, 1e-9)
	assert.Equal(t, 0.75, s.Max)
	assert.Equal(t, 0.25, s.Min)

	_, err = Summarize([]float64{})
	assert.ErrorIs(t, err, models.ErrEmptySequence)
}

func TestClassify_AgreesWithTable(t *testing.T) {
	table := NewThresholdTable([]ClassSpec{{Class: models.ClassWeather, Threshold: 0.9, Indices: []int{2}}})
	results, err := NewClassifier(table).Classify(filled(0.8))
	require.NoError(t, err)

	for i, r := range results {
		threshold, err := table.Threshold(i)
		require.NoError(t, err)
		class, err := table.Class(i)
		require.NoError(t, err)
		assert.Equal(t, threshold, r.Threshold, "index %d", i)
		assert.Equal(t, class, r.Class, "index %d", i)
	}
	assert.Equal(t, models.StatusOn, results[2].Status)
	assert.Equal(t, models.StatusOff, results[3].Status)
}
