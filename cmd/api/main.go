package main

import (
	"context"
	"log"
	"os"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/auth"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/category"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/db"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/location"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/product"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/review"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/router"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/search"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"MONGODB_URI",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── STORES ─────────────────────────
	mongoDB := db.ConnectMongo()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	redisClient := db.ConnectRedis()

	// ───────────────────────── STORAGE ─────────────────────────
	var uploader shop.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("R2_ENDPOINT not set, image uploads disabled")
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewMongoUserRepository(mongoDB)
	shopRepo := shop.NewMongoRepository(mongoDB)
	productRepo := product.NewMongoRepository(mongoDB)
	categoryRepo := category.NewMongoRepository(mongoDB)
	reviewRepo := review.NewMongoRepository(mongoDB)

	shopCatalog := shop.NewCatalogRepository(pgDB)
	productCatalog := product.NewCatalogRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	shopService := shop.NewService(shopRepo, uploader)
	productService := product.NewService(productRepo, shopRepo)
	categoryService := category.NewService(categoryRepo)
	reviewService := review.NewService(reviewRepo, shopRepo)

	planner := search.NewPlanner(shopRepo, shopCatalog)
	aggregator := search.NewAggregator(productCatalog, shopCatalog)

	resolver := location.NewResolver(location.NewNominatimGeocoder(), redisClient)

	// ───────────────────────── ROUTER ─────────────────────────
	handlers := router.Handlers{
		Auth:     auth.NewHandler(authService),
		Shop:     shop.NewHandler(shopService),
		Product:  product.NewHandler(productService),
		Category: category.NewHandler(categoryService),
		Review:   review.NewHandler(reviewService),
		Search:   search.NewHandler(planner, aggregator, productCatalog),
		Location: location.NewHandler(resolver),
	}

	checks := map[string]router.HealthCheck{
		"mongo": func(ctx context.Context) error {
			return mongoDB.Client().Ping(ctx, nil)
		},
		"postgres": func(ctx context.Context) error {
			return pgDB.Ping(ctx)
		},
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	r := router.New(handlers, checks)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}
