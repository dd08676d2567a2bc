package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"SmartSprinkler.dashboard/internal/controller"
	"SmartSprinkler.dashboard/internal/models"
	"SmartSprinkler.dashboard/internal/utils"
)

// Options configures optional parts of the router.
type Options struct {
	// RequireToken guards every route that changes sensor state when set.
	RequireToken func(http.Handler) http.Handler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// SetupRouter registers all application routes.
func SetupRouter(c *controller.DashboardController, opts Options) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", c.ShowDashboard).Methods(http.MethodGet)
	router.Handle("/", guard(opts, c.SubmitDashboard)).Methods(http.MethodPost)
	router.HandleFunc("/health", c.HandleHealth).Methods(http.MethodGet)
	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sensors", c.HandleListSensors).Methods(http.MethodGet)
	api.HandleFunc("/chart", c.HandleChart).Methods(http.MethodGet)
	api.HandleFunc("/classify", c.HandleClassify).Methods(http.MethodPost)
	api.Handle("/sensors/{index}", guard(opts, c.HandleSetSensor)).Methods(http.MethodPut)
	api.Handle("/analyze", guard(opts, c.HandleAnalyze)).Methods(http.MethodPost)

	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	router.NotFoundHandler = http.HandlerFunc(notFound)
	return router
}

func guard(opts Options, h http.HandlerFunc) http.Handler {
	if opts.RequireToken == nil {
		return h
	}
	return opts.RequireToken(h)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeMethodNotAllowed, "Method not allowed", nil, http.StatusMethodNotAllowed))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeNotFound, "Not found", nil, http.StatusNotFound))
}
