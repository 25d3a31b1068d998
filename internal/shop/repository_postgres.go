package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository reads the secondary relational mirror. Only plain row
// filters are used here; radius narrowing on this path happens client-side.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ShopFromCatalogRow is the secondary-store normalizing adapter. Catalog
// rows carry numeric ids; the sb_ prefix keeps them from colliding with
// primary-store ids when result sets are merged.
func ShopFromCatalogRow(id int64, name, category, address string, lat, lng float64, createdAt time.Time) *Shop {
	return &Shop{
		ID:           fmt.Sprintf("sb_%d", id),
		Name:         name,
		CategoryName: category,
		Address:      address,
		Location:     geo.Point{Lat: lat, Lng: lng},
		IsActive:     true,
		CreatedAt:    createdAt,
	}
}

// pageClause closes a catalog query with id ordering and LIMIT/OFFSET
// bound as placeholders numbered after the n arguments already in place.
func pageClause(n int) string {
	return fmt.Sprintf(` ORDER BY id ASC LIMIT $%d OFFSET $%d`, n+1, n+2)
}

// ListPage returns one batch of catalog shops ordered by id. No radius
// filtering: this store's client has no geospatial operator.
func (r *CatalogRepository) ListPage(
	ctx context.Context,
	categoryName string,
	offset, limit int,
) ([]*Shop, error) {

	query := `
		SELECT id, name, COALESCE(category, ''), COALESCE(address, ''),
		       latitude, longitude, created_at
		FROM shops
	`
	args := []interface{}{}
	if categoryName != "" {
		query += ` WHERE category = $1`
		args = append(args, categoryName)
	}
	query += pageClause(len(args))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*Shop
	for rows.Next() {
		var (
			id        int64
			name      string
			category  string
			address   string
			lat, lng  float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &category, &address, &lat, &lng, &createdAt); err != nil {
			return nil, err
		}
		shops = append(shops, ShopFromCatalogRow(id, name, category, address, lat, lng, createdAt))
	}

	return shops, rows.Err()
}

// CountByIDs reports how many catalog shops fall in the identifier set.
func (r *CatalogRepository) CountByIDs(ctx context.Context, ids []int64, categoryName string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM shops WHERE id = ANY($1)`
	args := []interface{}{ids}
	if categoryName != "" {
		query += ` AND category = $2`
		args = append(args, categoryName)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

// ListByIDs returns catalog shops restricted to the given identifier set,
// ordered by id, paginated. Substitute for a join the catalog client
// cannot express.
func (r *CatalogRepository) ListByIDs(
	ctx context.Context,
	ids []int64,
	categoryName string,
	offset, limit int,
) ([]*Shop, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, COALESCE(category, ''), COALESCE(address, ''),
		       latitude, longitude, created_at
		FROM shops
		WHERE id = ANY($1)
	`
	args := []interface{}{ids}
	if categoryName != "" {
		query += ` AND category = $2`
		args = append(args, categoryName)
	}
	query += pageClause(len(args))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*Shop
	for rows.Next() {
		var (
			id        int64
			name      string
			category  string
			address   string
			lat, lng  float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &category, &address, &lat, &lng, &createdAt); err != nil {
			return nil, err
		}
		shops = append(shops, ShopFromCatalogRow(id, name, category, address, lat, lng, createdAt))
	}

	return shops, rows.Err()
}
