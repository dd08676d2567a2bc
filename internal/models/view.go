package models

// SensorInputView drives one slider on the dashboard.
type SensorInputView struct {
	Index int
	Name  string
	Label string
	Value float64
}

// SummaryView is the display form of Summary.
type SummaryView struct {
	Average string `json:"average"`
	Highest string `json:"highest"`
	Lowest  string `json:"lowest"`
}

// ParcelView is the display-ready decision for one parcel.
type ParcelView struct {
	Parcel string `json:"parcel"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

// TotalsView is the display form of the decision tallies.
type TotalsView struct {
	CountOn    int    `json:"countOn"`
	CountOff   int    `json:"countOff"`
	WaterSaved string `json:"waterSaved"`
}

// ChartPoint is one bar of the readings chart.
type ChartPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// AnalysisView is everything the page needs after the analyze button.
type AnalysisView struct {
	Summary SummaryView  `json:"summary"`
	Totals  TotalsView   `json:"totals"`
	Parcels []ParcelView `json:"parcels"`
}

// DashboardView is the complete view-model pushed to the page.
type DashboardView struct {
	Sensors  []SensorInputView
	Summary  SummaryView
	Chart    []ChartPoint
	Analysis *AnalysisView
	Error    string
}
