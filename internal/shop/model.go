package shop

import (
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
)

// DayHours is one weekday's opening window ("HH:MM" local time).
type DayHours struct {
	Open   string `bson:"open" json:"open"`
	Close  string `bson:"close" json:"close"`
	Closed bool   `bson:"closed" json:"closed"`
}

// Shop is the canonical place entity. Both stores normalize into this type:
// shopFromDoc adapts a primary-store document, ShopFromCatalogRow adapts a
// secondary-store row, so the rest of the system never sees raw rows.
type Shop struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"owner_id,omitempty"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	CategoryID    string              `json:"category_id,omitempty"`
	CategoryName  string              `json:"category_name,omitempty"`
	Location      geo.Point           `json:"location"`
	Address       string              `json:"address"`
	Phone         string              `json:"phone,omitempty"`
	LogoURL       string              `json:"logo_url,omitempty"`
	Images        []string            `json:"images,omitempty"`
	BusinessHours map[string]DayHours `json:"business_hours,omitempty"`
	AverageRating float64             `json:"average_rating"`
	ReviewCount   int                 `json:"review_count"`
	Verified      bool                `json:"verified"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	// Distance from the search center in km, set by the presenter when a
	// center point is known. Never persisted.
	Distance *float64 `json:"distance,omitempty"`
}

// IsOpenAt reports whether the shop is open at the given time, best-effort:
// shops without hours for that weekday count as open.
func (s *Shop) IsOpenAt(t time.Time) bool {
	if len(s.BusinessHours) == 0 {
		return true
	}

	day := dayKey(t.Weekday())
	hours, ok := s.BusinessHours[day]
	if !ok {
		return true
	}
	if hours.Closed {
		return false
	}
	if hours.Open == "" || hours.Close == "" {
		return true
	}

	now := t.Format("15:04")
	return now >= hours.Open && now <= hours.Close
}

func dayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
