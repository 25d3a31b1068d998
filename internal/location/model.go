package location

import "github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

// Default location when the client supplies no coordinates.
var (
	DefaultPoint = geo.Point{Lat: 27.7172, Lng: 85.3240}
)

const DefaultAddress = "Kathmandu, Nepal"

// Resolved is a best-effort (point, display address) pair.
type Resolved struct {
	Point   geo.Point `json:"location"`
	Address string    `json:"address"`

	// Source records how the address was obtained: "geocoder", "cache",
	// "coordinates" (geocode failed, raw coordinates shown) or "default".
	Source string `json:"source"`
}
