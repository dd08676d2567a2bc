// Package client talks to a running dashboard over its JSON API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"SmartSprinkler.dashboard/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client calls the dashboard API.
type Client struct {
	rest *resty.Client
}

// New creates a Client for the server at baseURL. token, when not empty, is
// sent as a bearer token.
func New(baseURL, token string) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		rest.SetAuthToken(token)
	}
	return &Client{rest: rest}
}

// Classify asks the server to analyse values without storing them.
func (c *Client) Classify(ctx context.Context, values []float64) (models.AnalysisResponse, error) {
	var result models.AnalysisResponse
	var apiErr models.APIError

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(models.ClassifyRequest{Values: values}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/classify")
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("classify request: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Code == "" {
			apiErr.Code = models.ErrorCodeInternalServerError
			apiErr.Message = resp.Status()
		}
		return models.AnalysisResponse{}, apiErr
	}
	return result, nil
}
