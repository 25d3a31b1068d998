package category

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /categories (admin only)
// --------------------------------------------------
func (h *Handler) CreateCategory(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), in)
	if err == ErrDuplicate {
		c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "category created successfully",
		"category": category,
	})
}

// --------------------------------------------------
// GET /categories?parent
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), c.Query("parent"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	if categories == nil {
		categories = []*Category{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// --------------------------------------------------
// GET /categories/:id
// --------------------------------------------------
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// --------------------------------------------------
// PUT /categories/:id (admin only)
// --------------------------------------------------
func (h *Handler) UpdateCategory(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), in)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	case ErrDuplicate:
		c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "category updated successfully",
		"category": category,
	})
}

// --------------------------------------------------
// DELETE /categories/:id (admin only)
// --------------------------------------------------
func (h *Handler) DeleteCategory(c *gin.Context) {
	err := h.service.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
