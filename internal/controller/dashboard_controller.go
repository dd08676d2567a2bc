package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"SmartSprinkler.dashboard/internal/models"
	"SmartSprinkler.dashboard/internal/repository"
	"SmartSprinkler.dashboard/internal/service"
	"SmartSprinkler.dashboard/internal/utils"
	"SmartSprinkler.dashboard/internal/view"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 16

// DashboardController handles HTTP requests for the dashboard page and API.
type DashboardController struct {
	service *service.DashboardService
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(service *service.DashboardService) *DashboardController {
	return &DashboardController{
		service: service,
	}
}

// ShowDashboard renders the page for the current state.
func (c *DashboardController) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	c.renderPage(w, r, false, "", http.StatusOK)
}

// SubmitDashboard applies the slider form and re-renders the page. The
// analyze button additionally produces recommendations.
func (c *DashboardController) SubmitDashboard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderPage(w, r, false, "Could not read the submitted form.", http.StatusBadRequest)
		return
	}

	values := make(map[int]float64, models.SensorCount)
	for i := 0; i < models.SensorCount; i++ {
		raw := r.PostForm.Get(service.SensorFieldName(i))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			c.renderPage(w, r, false, fmt.Sprintf("Sensor %d: %q is not a number.", i, raw), http.StatusBadRequest)
			return
		}
		values[i] = v
	}
	if err := c.service.SetValues(values); err != nil {
		c.renderPage(w, r, false, err.Error(), http.StatusBadRequest)
		return
	}

	analyze := r.PostForm.Get("action") == view.ActionAnalyze
	c.renderPage(w, r, analyze, "", http.StatusOK)
}

func (c *DashboardController) renderPage(w http.ResponseWriter, r *http.Request, analyze bool, message string, status int) {
	v, err := c.service.Dashboard(analyze)
	if err != nil {
		slog.Error("Failed to build dashboard", "error", err)
		http.Error(w, "Failed to build dashboard", http.StatusInternalServerError)
		return
	}
	v.Error = message
	templ.Handler(view.Dashboard(v), templ.WithStatus(status)).ServeHTTP(w, r)
}

// HandleListSensors returns the current readings.
func (c *DashboardController) HandleListSensors(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.service.Readings())
}

// HandleSetSensor updates the sensor named in the path.
func (c *DashboardController) HandleSetSensor(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["index"]
	index, err := strconv.Atoi(raw)
	if err != nil {
		apiErr := models.NewAPIError(models.ErrorCodeInvalidFormat, fmt.Sprintf("sensor index %q is not an integer", raw), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	var req models.SetValueRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error decoding request body: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	if req.Value == nil {
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, "value is required", nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	if err := c.service.SetValue(index, *req.Value); err != nil {
		slog.Warn("Rejected sensor update", "index", index, "error", err)
		utils.RespondWithError(w, utils.ToAPIError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c.service.Readings()[index])
}

// HandleChart returns the bar chart series.
func (c *DashboardController) HandleChart(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.service.Chart())
}

// HandleAnalyze runs the analysis over the current state.
func (c *DashboardController) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.Analyze()
	if err != nil {
		utils.RespondWithError(w, utils.ToAPIError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// HandleClassify analyses the values in the request body without storing
// them.
func (c *DashboardController) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error decoding request body: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	values := make([]float64, len(req.Values))
	for i, v := range req.Values {
		values[i] = repository.Clamp(v)
	}

	resp, err := c.service.Classify(values)
	if err != nil {
		slog.Warn("Rejected classify request", "values", len(values), "error", err)
		utils.RespondWithError(w, utils.ToAPIError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// HandleHealth reports liveness.
func (c *DashboardController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
