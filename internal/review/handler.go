package review

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/shop"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /reviews
// --------------------------------------------------
func (h *Handler) CreateReview(c *gin.Context) {
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

	review, err := h.service.CreateReview(c.Request.Context(), userID, c.GetString("userEmail"), in)
	switch err {
	case nil:
	case shop.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	case ErrDuplicate:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "review created successfully",
		"review":  review,
	})
}

// --------------------------------------------------
// GET /shops/:id/reviews
// --------------------------------------------------
func (h *Handler) ListShopReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	reviews, total, err := h.service.ListByShop(c.Request.Context(), c.Param("id"), (page-1)*limit, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []*Review{}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":     reviews,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"total":       total,
	})
}

// --------------------------------------------------
// PUT /reviews/:id
// --------------------------------------------------
func (h *Handler) UpdateReview(c *gin.Context) {
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

	review, err := h.service.UpdateReview(c.Request.Context(), c.Param("id"), userID, in)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	case ErrNotAuthor:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "review updated successfully",
		"review":  review,
	})
}

// --------------------------------------------------
// DELETE /reviews/:id
// --------------------------------------------------
func (h *Handler) DeleteReview(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := h.service.DeleteReview(c.Request.Context(), c.Param("id"), userID, c.GetString("userRole"))
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	case ErrNotAuthor:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted successfully"})
}

// --------------------------------------------------
// PUT /reviews/:id/response (shop owner)
// --------------------------------------------------
func (h *Handler) RespondToReview(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.RespondToReview(c.Request.Context(), c.Param("id"), userID, body.Response)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	case ErrNotShopOwner:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "response added successfully",
		"review":  review,
	})
}
