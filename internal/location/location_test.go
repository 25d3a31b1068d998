package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

type stubGeocoder struct {
	address string
	err     error
	calls   int
}

func (s *stubGeocoder) Reverse(ctx context.Context, p geo.Point) (string, error) {
	s.calls++
	return s.address, s.err
}

func TestResolve_NoCoordinatesUsesDefault(t *testing.T) {
	geocoder := &stubGeocoder{}
	resolver := NewResolver(geocoder, nil)

	resolved, err := resolver.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolved.Point != DefaultPoint {
		t.Errorf("expected default point, got %+v", resolved.Point)
	}
	if resolved.Address != DefaultAddress {
		t.Errorf("expected %q, got %q", DefaultAddress, resolved.Address)
	}
	if resolved.Source != "default" {
		t.Errorf("expected default source, got %s", resolved.Source)
	}
	if geocoder.calls != 0 {
		t.Errorf("expected no geocode attempt, got %d", geocoder.calls)
	}
}

func TestResolve_GeocodeSuccess(t *testing.T) {
	geocoder := &stubGeocoder{address: "Thamel, Kathmandu, Nepal"}
	resolver := NewResolver(geocoder, nil)

	resolved, err := resolver.Resolve(context.Background(), &geo.Point{Lat: 27.7154, Lng: 85.3123})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Address != "Thamel, Kathmandu, Nepal" {
		t.Errorf("unexpected address %q", resolved.Address)
	}
	if resolved.Source != "geocoder" {
		t.Errorf("expected geocoder source, got %s", resolved.Source)
	}
}

func TestResolve_GeocodeFailureFallsBackToCoordinates(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("timeout")}
	resolver := NewResolver(geocoder, nil)

	resolved, err := resolver.Resolve(context.Background(), &geo.Point{Lat: 27.7172, Lng: 85.3240})
	if err != nil {
		t.Fatalf("geocode failure must not surface: %v", err)
	}
	if resolved.Address != "27.7172, 85.3240" {
		t.Errorf("expected coordinate label, got %q", resolved.Address)
	}
	if resolved.Source != "coordinates" {
		t.Errorf("expected coordinates source, got %s", resolved.Source)
	}
	if geocoder.calls != 1 {
		t.Errorf("expected a single attempt, got %d", geocoder.calls)
	}
}

func TestResolve_InvalidCoordinates(t *testing.T) {
	resolver := NewResolver(&stubGeocoder{}, nil)

	if _, err := resolver.Resolve(context.Background(), &geo.Point{Lat: 95, Lng: 0}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNominatimGeocoder_Reverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("expected json format, got %s", r.URL.Query().Get("format"))
		}
		w.Write([]byte(`{"display_name": "Jawalakhel, Lalitpur, Nepal"}`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoderWithBase(server.URL)

	address, err := geocoder.Reverse(context.Background(), geo.Point{Lat: 27.6727, Lng: 85.3240})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address != "Jawalakhel, Lalitpur, Nepal" {
		t.Errorf("unexpected address %q", address)
	}
}

func TestNominatimGeocoder_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoderWithBase(server.URL)

	if _, err := geocoder.Reverse(context.Background(), geo.Point{}); err == nil {
		t.Fatal("expected error from geocoder error payload")
	}
}
