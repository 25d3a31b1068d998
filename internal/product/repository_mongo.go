package product

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	products *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{products: database.Collection("products")}
}

func (r *MongoRepository) Create(ctx context.Context, product *Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.StockStatus = StockStatusFor(product.StockQuantity)
	product.IsActive = true
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	_, err := r.products.InsertOne(ctx, product)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter) ([]*Product, int64, error) {
	query := bson.M{"is_active": true}

	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.ShopID != "" {
		query["shop_id"] = filter.ShopID
	} else if filter.ShopIDs != nil {
		query["shop_id"] = bson.M{"$in": filter.ShopIDs}
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.InStock != nil {
		if *filter.InStock {
			query["stock_quantity"] = bson.M{"$gt": 0}
		} else {
			query["stock_quantity"] = 0
		}
	}
	if filter.Search != "" {
		regex := searchRegex(filter.Search)
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}

	total, err := r.products.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.products.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []*Product
	for cursor.Next(ctx) {
		var p Product
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, err
		}
		products = append(products, &p)
	}

	return products, total, cursor.Err()
}

// searchRegex builds a case-insensitive substring matcher. The term is
// quoted so user input like "(" stays a literal instead of erroring or
// widening the query.
func searchRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func (r *MongoRepository) Update(ctx context.Context, product *Product) error {
	product.StockStatus = StockStatusFor(product.StockQuantity)
	product.UpdatedAt = time.Now()

	result, err := r.products.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.products.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
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
