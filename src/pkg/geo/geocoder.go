// Package geo resolves pickup coordinates to human-readable addresses using
// the Nominatim reverse-geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

// Client is a reverse-geocoding client. Lookups are best effort: any
// failure yields an empty address, never an error visible to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a new geocoding Client instance.
func NewClient(cfg *model.Config, logger *log.Logger) *Client {
	return &Client{
		baseURL: cfg.GeocodeBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// reverseResponse is the subset of the Nominatim reverse response we use.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode returns the display name for the given coordinates, or an
// empty string when the lookup fails for any reason.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))
	requestURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Warn(ctx, "Failed to build reverse-geocode request", log.Fields{"error": err})
		return ""
	}
	req.Header.Set("User-Agent", "wastewise/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "Reverse-geocode request failed", log.Fields{"error": err})
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn(ctx, "Reverse-geocode request rejected", log.Fields{"status": resp.StatusCode})
		return ""
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn(ctx, "Failed to decode reverse-geocode response", log.Fields{"error": err})
		return ""
	}

	return parsed.DisplayName
}
