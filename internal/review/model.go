package review

import "time"

type Review struct {
	ID         string    `json:"id" bson:"_id"`
	ShopID     string    `json:"shop_id" bson:"shop_id"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`

	// Response is the shop owner's public reply, if any.
	Response    string     `json:"response,omitempty" bson:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty" bson:"responded_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
