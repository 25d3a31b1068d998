package search

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/product"
	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"

	"github.com/gin-gonic/gin"
)

const (
	defaultRadiusKm = 5.0
	defaultPageSize = 20
)

type Handler struct {
	planner    *Planner
	aggregator *Aggregator
	products   CatalogProducts
}

func NewHandler(planner *Planner, aggregator *Aggregator, products CatalogProducts) *Handler {
	return &Handler{planner: planner, aggregator: aggregator, products: products}
}

// --------------------------------------------------
// GET /search?lat&lng&radius&category&minRating&openNow&sort&page&limit
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	radius := defaultRadiusKm
	if v := c.Query("radius"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		radius = parsed
	}

	var minRating float64
	if v := c.Query("minRating"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minRating"})
			return
		}
		minRating = parsed
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	filter := Filter{
		Center:    geo.Point{Lat: lat, Lng: lng},
		RadiusKm:  radius,
		Category:  c.Query("category"),
		MinRating: minRating,
		OpenNow:   c.Query("openNow") == "true",
		Page:      page,
		Limit:     limit,
	}

	result, err := h.planner.Search(c.Request.Context(), filter)
	if err == ErrSearchUnavailable {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Distance is always annotated but only reorders the page on request;
	// otherwise the store's ordering (newest-first on the primary path)
	// reaches the caller untouched.
	shops := Present(result.Shops, PresentOptions{
		MinRating:      filter.MinRating,
		OpenNow:        filter.OpenNow,
		Center:         &filter.Center,
		SortByDistance: c.Query("sort") == "distance",
	})

	c.JSON(http.StatusOK, gin.H{
		"results":     shops,
		"totalPages":  totalPages(result.Total, result.Limit),
		"currentPage": result.Page,
		"total":       result.Total,
		"source":      result.Source,
	})
}

// --------------------------------------------------
// GET /catalog/search?q&category&shopId&page&limit
// --------------------------------------------------
func (h *Handler) CatalogSearch(c *gin.Context) {
	// With shopId the caller wants one shop's matching products, not the
	// product-led shop aggregation.
	if shopID := c.Query("shopId"); shopID != "" {
		id, err := strconv.ParseInt(shopID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shopId"})
			return
		}

		items, err := h.products.ListByShop(c.Request.Context(), id, c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		if items == nil {
			items = []product.CatalogProduct{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	shops, total, err := h.aggregator.SearchByProduct(c.Request.Context(), query, c.Query("category"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	if shops == nil {
		shops = []*shop.Shop{}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     shops,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
