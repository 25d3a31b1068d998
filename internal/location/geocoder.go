package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

// Geocoder turns coordinates into a display address.
type Geocoder interface {
	Reverse(ctx context.Context, p geo.Point) (string, error)
}

const nominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder reverse-geocodes via the OpenStreetMap Nominatim API.
// Single attempt, bounded wait; failures surface to the caller, who falls
// back to a coordinate label.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewNominatimGeocoder() *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: nominatimBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewNominatimGeocoderWithBase points the geocoder at a different server,
// used by tests and self-hosted Nominatim instances.
func NewNominatimGeocoderWithBase(baseURL string) *NominatimGeocoder {
	g := NewNominatimGeocoder()
	g.baseURL = baseURL
	return g
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, p geo.Point) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", p.Lat)),
		url.QueryEscape(fmt.Sprintf("%f", p.Lng)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "khojhub-backend")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body struct {
		DisplayName string `json:"display_name"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Error != "" {
		return "", errors.New(body.Error)
	}
	if body.DisplayName == "" {
		return "", errors.New("empty geocoder response")
	}

	return body.DisplayName, nil
}
