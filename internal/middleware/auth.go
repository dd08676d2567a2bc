package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"SmartSprinkler.dashboard/internal/config"
	"SmartSprinkler.dashboard/internal/models"
	"SmartSprinkler.dashboard/internal/utils"
)

const jwksCacheTTL = 5 * time.Minute

// NewAuth0Middleware builds a middleware that requires a valid Auth0 access
// token. Keys are fetched from the issuer's JWKS endpoint and cached.
func NewAuth0Middleware(cfg config.Auth0Config) (func(http.Handler) http.Handler, error) {
	issuerURL, err := url.Parse(cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("parse auth0 issuer: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, jwksCacheTTL)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Audience},
	)
	if err != nil {
		return nil, fmt.Errorf("set up jwt validator: %w", err)
	}
	return RequireToken(jwtValidator.ValidateToken), nil
}

// RequireToken wraps handlers so that requests without a token accepted by
// validate are rejected with 401.
func RequireToken(validate jwtmiddleware.ValidateToken) func(http.Handler) http.Handler {
	m := jwtmiddleware.New(validate, jwtmiddleware.WithErrorHandler(authErrorHandler))
	return m.CheckJWT
}

func authErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.Warn("JWT authentication failed", "path", r.URL.Path, "error", err)

	message := "Invalid token"
	if errors.Is(err, jwtmiddleware.ErrJWTMissing) {
		message = "Authorization header missing"
	}
	utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeUnauthorized, message, nil, http.StatusUnauthorized))
}
