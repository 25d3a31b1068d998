package product

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /products
// --------------------------------------------------
func (h *Handler) CreateProduct(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), userID, in)
	if err == ErrShopNotOwned {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product created successfully",
		"product": product,
	})
}

// --------------------------------------------------
// GET /products
// --------------------------------------------------
func (h *Handler) ListProducts(c *gin.Context) {
	q := ListQuery{}

	q.Filter.CategoryID = c.Query("category")
	q.Filter.ShopID = c.Query("shop")
	q.Filter.Search = c.Query("search")

	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			q.Filter.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			q.Filter.MaxPrice = &p
		}
	}
	if v := c.Query("inStock"); v == "true" || v == "false" {
		inStock := v == "true"
		q.Filter.InStock = &inStock
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	q.Filter.Offset = (page - 1) * limit
	q.Filter.Limit = limit

	latStr, lngStr, radiusStr := c.Query("lat"), c.Query("lng"), c.Query("radius")
	if latStr != "" && lngStr != "" && radiusStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		radius, errRad := strconv.ParseFloat(radiusStr, 64)
		if errLat != nil || errLng != nil || errRad != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location parameters"})
			return
		}
		center := geo.Point{Lat: lat, Lng: lng}
		if err := center.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q.Center = &center
		q.RadiusKm = radius
	}

	products, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}
	if products == nil {
		products = []*Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    products,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"total":       total,
	})
}

// --------------------------------------------------
// GET /products/:id
// --------------------------------------------------
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// --------------------------------------------------
// PUT /products/:id
// --------------------------------------------------
func (h *Handler) UpdateProduct(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("userRole")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), userID, role, in)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case ErrShopNotOwned:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "product updated successfully",
		"product": product,
	})
}

// --------------------------------------------------
// DELETE /products/:id
// --------------------------------------------------
func (h *Handler) DeleteProduct(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("userRole")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"), userID, role)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case ErrShopNotOwned:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
