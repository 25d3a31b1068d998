package product

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// catalogCandidateCap bounds phase one of a product-led search. If more
// rows match, only the first candidateCap in arrival order are considered;
// a recall trade-off, not an error.
const catalogCandidateCap = 5000

// CatalogProduct is a secondary-store row.
type CatalogProduct struct {
	ID     int64   `json:"id"`
	ShopID int64   `json:"shop_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// CatalogRepository reads the secondary relational mirror of products.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// SearchShopIDs returns the distinct shops owning a product whose name
// matches the query case-insensitively, in row-arrival order, bounded by
// the candidate cap.
func (r *CatalogRepository) SearchShopIDs(ctx context.Context, nameQuery string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT shop_id
		FROM products
		WHERE name ILIKE $1
		LIMIT $2
	`, "%"+nameQuery+"%", catalogCandidateCap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[int64]bool)
	var ids []int64
	for rows.Next() {
		var shopID int64
		if err := rows.Scan(&shopID); err != nil {
			return nil, err
		}
		if !seen[shopID] {
			seen[shopID] = true
			ids = append(ids, shopID)
		}
	}

	return ids, rows.Err()
}

// ListByShop returns one shop's catalog, optionally filtered by a
// case-insensitive name query, ordered by name.
func (r *CatalogRepository) ListByShop(ctx context.Context, shopID int64, nameQuery string) ([]CatalogProduct, error) {
	query := `
		SELECT id, shop_id, name, price
		FROM products
		WHERE shop_id = $1
	`
	args := []interface{}{shopID}
	if nameQuery != "" {
		query += ` AND name ILIKE $2`
		args = append(args, "%"+nameQuery+"%")
	}
	query += ` ORDER BY name ASC LIMIT 5000`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []CatalogProduct{}
	for rows.Next() {
		var p CatalogProduct
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
