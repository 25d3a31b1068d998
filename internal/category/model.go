package category

import "time"

// DefaultColor is applied when a category is created without one.
const DefaultColor = "#6B7280"

type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	Color       string    `json:"color" bson:"color"`
	ParentID    string    `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
