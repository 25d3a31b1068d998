package geo

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		point   Point
		wantErr error
	}{
		{"kathmandu", Point{27.7172, 85.3240}, nil},
		{"lat too high", Point{91, 0}, ErrInvalidLatitude},
		{"lat too low", Point{-90.1, 0}, ErrInvalidLatitude},
		{"lng too high", Point{0, 180.5}, ErrInvalidLongitude},
		{"boundary ok", Point{-90, 180}, nil},
	}

	for _, tc := range cases {
		if err := tc.point.Validate(); err != tc.wantErr {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestHaversine_ZeroDistance(t *testing.T) {
	p := Point{27.7172, 85.3240}
	if d := Haversine(p, p); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Kathmandu city centre to Jawalakhel is roughly 2.5 km.
	ktm := Point{27.7172, 85.3240}
	jwl := Point{27.6950, 85.3170}

	d := Haversine(ktm, jwl)
	if d < 2.0 || d > 3.0 {
		t.Errorf("expected ~2.5 km, got %f", d)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Point{27.7172, 85.3240}
	b := Point{27.6675, 85.3210}

	if math.Abs(Haversine(a, b)-Haversine(b, a)) > 1e-9 {
		t.Error("expected symmetric distance")
	}
}
