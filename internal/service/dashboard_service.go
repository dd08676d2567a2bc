package service

import (
	"fmt"
	"log/slog"

	"SmartSprinkler.dashboard/internal/irrigation"
	"SmartSprinkler.dashboard/internal/models"
	"SmartSprinkler.dashboard/internal/repository"
)

// Recorder receives dashboard activity. *metrics.Recorder implements it.
type Recorder interface {
	ObserveAnalysis(stats models.AggregateStats)
	ObserveSensorWrite(err error)
}

// DashboardService handles the business logic behind the dashboard.
type DashboardService struct {
	repo       repository.Repository
	classifier *irrigation.Classifier
	recorder   Recorder
}

// NewDashboardService creates a new DashboardService. recorder may be nil.
func NewDashboardService(repo repository.Repository, classifier *irrigation.Classifier, recorder Recorder) *DashboardService {
	return &DashboardService{
		repo:       repo,
		classifier: classifier,
		recorder:   recorder,
	}
}

// OnAnalyze classifies the current state and computes its statistics.
func OnAnalyze(state repository.Repository, classifier *irrigation.Classifier) ([]models.ClassificationResult, models.AggregateStats, error) {
	return analyzeValues(classifier, state.GetAll())
}

func analyzeValues(classifier *irrigation.Classifier, values []float64) ([]models.ClassificationResult, models.AggregateStats, error) {
	summary, err := irrigation.Summarize(values)
	if err != nil {
		return nil, models.AggregateStats{}, fmt.Errorf("analyze: %w", err)
	}
	results, err := classifier.Classify(values)
	if err != nil {
		return nil, models.AggregateStats{}, fmt.Errorf("analyze: %w", err)
	}
	return results, irrigation.Tally(summary, results), nil
}

// SetValue updates one sensor.
func (s *DashboardService) SetValue(index int, value float64) error {
	err := s.repo.SetValue(index, value)
	if s.recorder != nil {
		s.recorder.ObserveSensorWrite(err)
	}
	if err != nil {
		return err
	}
	slog.Debug("sensor updated", "index", index, "value", value)
	return nil
}

// SetValues updates several sensors. If any index is out of range nothing
// is written.
func (s *DashboardService) SetValues(values map[int]float64) error {
	for i := range values {
		if i < 0 || i >= models.SensorCount {
			err := fmt.Errorf("set sensor %d: %w", i, models.ErrInvalidIndex)
			if s.recorder != nil {
				s.recorder.ObserveSensorWrite(err)
			}
			return err
		}
	}
	for i := 0; i < models.SensorCount; i++ {
		if v, ok := values[i]; ok {
			if err := s.SetValue(i, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Readings returns the current sensor readings.
func (s *DashboardService) Readings() []models.SensorReading {
	return s.repo.Readings()
}

// Chart returns the bar chart series for the current state.
func (s *DashboardService) Chart() []models.ChartPoint {
	return ChartPoints(s.repo.GetAll())
}

// Analyze runs OnAnalyze over the service's state and builds the display
// form of the outcome.
func (s *DashboardService) Analyze() (models.AnalysisResponse, error) {
	readings := s.repo.Readings()
	return s.analyze(readings)
}

// Classify analyses values without touching the stored state.
func (s *DashboardService) Classify(values []float64) (models.AnalysisResponse, error) {
	results, stats, err := analyzeValues(s.classifier, values)
	if err != nil {
		return models.AnalysisResponse{}, err
	}
	return models.AnalysisResponse{
		Results: results,
		Stats:   stats,
		Display: BuildAnalysisView(s.repo.Labels(), results, stats),
	}, nil
}

func (s *DashboardService) analyze(readings []models.SensorReading) (models.AnalysisResponse, error) {
	values := make([]float64, len(readings))
	labels := make([]string, len(readings))
	for i, r := range readings {
		values[i] = r.Value
		labels[i] = r.Label
	}

	results, stats, err := analyzeValues(s.classifier, values)
	if err != nil {
		return models.AnalysisResponse{}, err
	}
	if s.recorder != nil {
		s.recorder.ObserveAnalysis(stats)
	}
	slog.Info("irrigation analysis", "on", stats.CountOn, "off", stats.CountOff, "water_saved", stats.PercentWaterSaved)

	return models.AnalysisResponse{
		Results: results,
		Stats:   stats,
		Display: BuildAnalysisView(labels, results, stats),
	}, nil
}

// Dashboard builds the page view-model from one snapshot of the state.
// When analyze is set the recommendations are included.
func (s *DashboardService) Dashboard(analyze bool) (models.DashboardView, error) {
	readings := s.repo.Readings()

	values := make([]float64, len(readings))
	sensors := make([]models.SensorInputView, len(readings))
	for i, r := range readings {
		values[i] = r.Value
		sensors[i] = models.SensorInputView{
			Index: r.Index,
			Name:  SensorFieldName(r.Index),
			Label: r.Label,
			Value: r.Value,
		}
	}

	summary, err := irrigation.Summarize(values)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("dashboard: %w", err)
	}

	view := models.DashboardView{
		Sensors: sensors,
		Summary: FormatSummary(summary),
		Chart:   ChartPoints(values),
	}
	if analyze {
		resp, err := s.analyze(readings)
		if err != nil {
			return models.DashboardView{}, err
		}
		view.Analysis = &resp.Display
	}
	return view, nil
}
