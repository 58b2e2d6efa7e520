// Package geo resolves coordinates to a city/address pair using the
// OpenStreetMap Nominatim reverse-geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Result is the outcome of a reverse-geocoding lookup. The zero value
// means unresolved; callers substitute their own placeholder text for
// the empty fields.
type Result struct {
	Resolved bool
	City     string
	Address  string
}

type Resolver struct {
	baseURL   string
	userAgent string
	languages string
	client    *http.Client
}

func NewResolver(baseURL, userAgent, languages string, timeout time.Duration) *Resolver {
	return &Resolver{
		baseURL:   baseURL,
		userAgent: userAgent,
		languages: languages,
		client:    &http.Client{Timeout: timeout},
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City   string `json:"city"`
		Town   string `json:"town"`
		County string `json:"county"`
		State  string `json:"state"`
	} `json:"address"`
}

// ReverseGeocode looks up the city and address for a coordinate pair.
// Geocoding is best-effort enrichment: every failure (transport, bad
// status, bad JSON, timeout) collapses to an unresolved Result and is
// never surfaced as an error. One attempt per call, no retries.
func (r *Resolver) ReverseGeocode(ctx context.Context, lat, lon float64) Result {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("accept-language", r.languages)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.WithError(err).Warn("geocode: building request failed")
		return Result{}
	}
	// Nominatim usage policy requires a distinct client identifier.
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("geocode: request failed")
		return Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Warn("geocode: unexpected status")
		return Result{}
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.WithError(err).Warn("geocode: decoding response failed")
		return Result{}
	}

	// City granularity fallback: city > town > county > state.
	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.County
	}
	if city == "" {
		city = body.Address.State
	}

	return Result{Resolved: true, City: city, Address: body.DisplayName}
}
