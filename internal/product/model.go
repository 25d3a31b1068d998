package product

import "time"

// Stock status is derived from quantity, never set directly.
const (
	StockInStock    = "in_stock"
	StockLimited    = "limited"
	StockOutOfStock = "out_of_stock"
)

const limitedStockThreshold = 5

type Product struct {
	ID            string    `bson:"_id" json:"id"`
	ShopID        string    `bson:"shop_id" json:"shop_id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	CategoryID    string    `bson:"category_id" json:"category_id"`
	StockQuantity int       `bson:"stock_quantity" json:"stock_quantity"`
	StockStatus   string    `bson:"stock_status" json:"stock_status"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

func StockStatusFor(quantity int) string {
	switch {
	case quantity == 0:
		return StockOutOfStock
	case quantity <= limitedStockThreshold:
		return StockLimited
	default:
		return StockInStock
	}
}
