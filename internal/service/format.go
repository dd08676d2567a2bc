package service

import (
	"fmt"

	"SmartSprinkler.dashboard/internal/models"
)

// SensorFieldName is the form field carrying the value of sensor i.
func SensorFieldName(i int) string {
	return fmt.Sprintf("sensor_%d", i)
}

// ParcelName is the display name of the parcel watered by sensor i.
func ParcelName(i int) string {
	return fmt.Sprintf("Parcel %d", i+1)
}

// FormatSummary renders statistics with two decimals.
func FormatSummary(s models.Summary) models.SummaryView {
	return models.SummaryView{
		Average: fmt.Sprintf("%.2f", s.Mean),
		Highest: fmt.Sprintf("%.2f", s.Max),
		Lowest:  fmt.Sprintf("%.2f", s.Min),
	}
}

// BuildAnalysisView turns classification output into display strings.
// labels must be index-aligned with results.
func BuildAnalysisView(labels []string, results []models.ClassificationResult, stats models.AggregateStats) models.AnalysisView {
	parcels := make([]models.ParcelView, len(results))
	for i, r := range results {
		var label string
		if r.Index < len(labels) {
			label = labels[r.Index]
		}
		parcels[i] = models.ParcelView{
			Parcel: ParcelName(r.Index),
			Label:  label,
			Value:  fmt.Sprintf("%.2f", r.Value),
			Status: string(r.Status),
		}
	}

	return models.AnalysisView{
		Summary: FormatSummary(models.Summary{Mean: stats.Mean, Max: stats.Max, Min: stats.Min}),
		Totals: models.TotalsView{
			CountOn:    stats.CountOn,
			CountOff:   stats.CountOff,
			WaterSaved: fmt.Sprintf("%.1f", stats.PercentWaterSaved),
		},
		Parcels: parcels,
	}
}

// ChartPoints pairs each value with its sensor index.
func ChartPoints(values []float64) []models.ChartPoint {
	points := make([]models.ChartPoint, len(values))
	for i, v := range values {
		points[i] = models.ChartPoint{Index: i, Value: v}
	}
	return points
}
