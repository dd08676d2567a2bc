package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SmartSprinkler.dashboard/internal/models"
)

// DefaultLabels are the sensor descriptions, in sensor index order.
var DefaultLabels = []string{
	"Soil Moisture Level", "Air Temperature", "Air Humidity", "Light Intensity",
	"Soil pH Level", "Water Temperature", "Wind Speed", "Atmospheric Pressure",
	"Leaf Wetness", "Solar Radiation", "Soil Temperature", "Rainfall Amount",
	"Evapotranspiration", "Soil Salinity", "Plant Growth Stage", "Water Quality",
	"Nutrient Level", "Root Zone Moisture", "Canopy Temperature", "Irrigation History",
}

// LabelsFile is the YAML document read from SENSOR_LABELS_FILE.
type LabelsFile struct {
	Sensors []string `yaml:"sensors"`
}

// LoadLabels returns the labels from path, or DefaultLabels when path is
// empty.
func LoadLabels(path string) ([]string, error) {
	if path == "" {
		out := make([]string, len(DefaultLabels))
		copy(out, DefaultLabels)
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}
	return ParseLabels(data)
}

// ParseLabels decodes a labels document and checks it names every sensor.
func ParseLabels(data []byte) ([]string, error) {
	var doc LabelsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse labels file: %w", err)
	}
	if len(doc.Sensors) != models.SensorCount {
		return nil, fmt.Errorf("labels file lists %d sensors, want %d: %w", len(doc.Sensors), models.SensorCount, models.ErrInvalidInput)
	}
	for i, l := range doc.Sensors {
		if l == "" {
			return nil, fmt.Errorf("labels file: sensor %d has an empty label: %w", i, models.ErrInvalidInput)
		}
	}
	return doc.Sensors, nil
}
