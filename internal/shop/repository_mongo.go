package shop

import (
	"context"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// geoJSONPoint is the stored location shape; coordinates are [lng, lat],
// the order the 2dsphere index expects.
type geoJSONPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// shopDoc is the primary-store document shape.
type shopDoc struct {
	ID            string              `bson:"_id"`
	OwnerID       string              `bson:"owner_id"`
	Name          string              `bson:"name"`
	Description   string              `bson:"description,omitempty"`
	CategoryID    string              `bson:"category_id"`
	CategoryName  string              `bson:"category_name,omitempty"`
	Location      geoJSONPoint        `bson:"location"`
	Address       string              `bson:"address,omitempty"`
	Phone         string              `bson:"phone,omitempty"`
	LogoURL       string              `bson:"logo_url,omitempty"`
	Images        []string            `bson:"images,omitempty"`
	BusinessHours map[string]DayHours `bson:"business_hours,omitempty"`
	AverageRating float64             `bson:"average_rating"`
	ReviewCount   int                 `bson:"review_count"`
	Verified      bool                `bson:"verified"`
	IsActive      bool                `bson:"is_active"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

func docFromShop(s *Shop) *shopDoc {
	return &shopDoc{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Description:  s.Description,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Location: geoJSONPoint{
			Type:        "Point",
			Coordinates: []float64{s.Location.Lng, s.Location.Lat},
		},
		Address:       s.Address,
		Phone:         s.Phone,
		LogoURL:       s.LogoURL,
		Images:        s.Images,
		BusinessHours: s.BusinessHours,
		AverageRating: s.AverageRating,
		ReviewCount:   s.ReviewCount,
		Verified:      s.Verified,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// shopFromDoc is the primary-store normalizing adapter.
func shopFromDoc(d *shopDoc) *Shop {
	s := &Shop{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		Name:          d.Name,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		CategoryName:  d.CategoryName,
		Address:       d.Address,
		Phone:         d.Phone,
		LogoURL:       d.LogoURL,
		Images:        d.Images,
		BusinessHours: d.BusinessHours,
		AverageRating: d.AverageRating,
		ReviewCount:   d.ReviewCount,
		Verified:      d.Verified,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if len(d.Location.Coordinates) == 2 {
		s.Location = geo.Point{Lat: d.Location.Coordinates[1], Lng: d.Location.Coordinates[0]}
	}
	return s
}

type MongoRepository struct {
	shops *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{shops: database.Collection("shops")}
}

func (r *MongoRepository) Create(ctx context.Context, shop *Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	shop.IsActive = true
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = shop.CreatedAt

	_, err := r.shops.InsertOne(ctx, docFromShop(shop))
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Shop, error) {
	var doc shopDoc
	err := r.shops.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return shopFromDoc(&doc), nil
}

func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Shop, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.shops.Find(ctx, bson.M{"owner_id": ownerID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	return decodeShops(ctx, cursor)
}

func (r *MongoRepository) Update(ctx context.Context, shop *Shop) error {
	shop.UpdatedAt = time.Now()

	result, err := r.shops.ReplaceOne(ctx, bson.M{"_id": shop.ID}, docFromShop(shop))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate clears the active flag instead of deleting, preserving
// referential integrity with products and reviews.
func (r *MongoRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.shops.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"is_active": false, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func radiusFilter(center geo.Point, radiusKm float64, categoryID string) bson.M {
	filter := bson.M{
		"is_active": true,
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{center.Lng, center.Lat},
					radiusKm / geo.EarthRadiusKm,
				},
			},
		},
	}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	return filter
}

func (r *MongoRepository) SearchWithinRadius(
	ctx context.Context,
	center geo.Point,
	radiusKm float64,
	categoryID string,
	offset, limit int,
) ([]*Shop, int64, error) {

	filter := radiusFilter(center, radiusKm, categoryID)

	total, err := r.shops.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.shops.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	shops, err := decodeShops(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return shops, total, nil
}

func (r *MongoRepository) IDsWithinRadius(
	ctx context.Context,
	center geo.Point,
	radiusKm float64,
) ([]string, error) {

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.shops.Find(ctx, radiusFilter(center, radiusKm, ""), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (r *MongoRepository) UpdateRating(ctx context.Context, shopID string, average float64, count int) error {
	_, err := r.shops.UpdateOne(ctx, bson.M{"_id": shopID}, bson.M{
		"$set": bson.M{
			"average_rating": average,
			"review_count":   count,
			"updated_at":     time.Now(),
		},
	})
	return err
}

func (r *MongoRepository) AddImages(ctx context.Context, shopID string, urls []string) error {
	result, err := r.shops.UpdateOne(ctx, bson.M{"_id": shopID}, bson.M{
		"$push": bson.M{"images": bson.M{"$each": urls}},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeShops(ctx context.Context, cursor *mongo.Cursor) ([]*Shop, error) {
	defer cursor.Close(ctx)

	var shops []*Shop
	for cursor.Next(ctx) {
		var doc shopDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		shops = append(shops, shopFromDoc(&doc))
	}
	return shops, cursor.Err()
}
