package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens the primary document store and ensures the indexes
// the search path depends on. The 2dsphere index on shops.location is what
// makes $geoWithin / $centerSphere queries usable.
func ConnectMongo() *mongo.Database {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI not set")
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "khojhub"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Mongo connection failed:", err)
	}

	database := client.Database(dbName)

	if err := ensureIndexes(ctx, database); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	log.Println("✅ Connected to MongoDB")
	return database
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	shopIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{
			{Key: "category_id", Value: 1},
			{Key: "is_active", Value: 1},
			{Key: "verified", Value: 1},
		}},
	}
	if _, err := database.Collection("shops").Indexes().CreateMany(ctx, shopIndexes); err != nil {
		return err
	}

	productIndexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "shop_id", Value: 1},
			{Key: "category_id", Value: 1},
			{Key: "is_active", Value: 1},
		}},
	}
	if _, err := database.Collection("products").Indexes().CreateMany(ctx, productIndexes); err != nil {
		return err
	}

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("categories").Indexes().CreateOne(ctx, categoryIndex); err != nil {
		return err
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		return err
	}

	reviewIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "shop_id", Value: 1},
			{Key: "author_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("reviews").Indexes().CreateOne(ctx, reviewIndex); err != nil {
		return err
	}

	return nil
}
