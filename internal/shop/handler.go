package shop

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

func currentUser(c *gin.Context) (string, string, bool) {
	userID := c.GetString("userID")
	role := c.GetString("userRole")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", "", false
	}
	return userID, role, true
}

// --------------------------------------------------
// POST /shops
// --------------------------------------------------
func (h *Handler) CreateShop(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	shop, err := h.service.CreateShop(c.Request.Context(), userID, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "shop created successfully",
		"shop":    shop,
	})
}

// --------------------------------------------------
// GET /shops/my-shops
// --------------------------------------------------
func (h *Handler) ListMyShops(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	shops, err := h.service.ListMyShops(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// --------------------------------------------------
// GET /shops/:id
// --------------------------------------------------
func (h *Handler) GetShopDetails(c *gin.Context) {
	shop, err := h.service.GetDetails(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": shop})
}

// --------------------------------------------------
// PUT /shops/:id
// --------------------------------------------------
func (h *Handler) UpdateShop(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	shop, err := h.service.UpdateShop(c.Request.Context(), c.Param("id"), userID, role, in)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	case ErrUnauthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "shop updated successfully",
		"shop":    shop,
	})
}

// --------------------------------------------------
// DELETE /shops/:id
// --------------------------------------------------
func (h *Handler) DeleteShop(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	err := h.service.DeleteShop(c.Request.Context(), c.Param("id"), userID, role)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	case ErrUnauthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shop deleted successfully"})
}

// --------------------------------------------------
// POST /shops/:id/images
// --------------------------------------------------
func (h *Handler) UploadImages(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || form.File["images"] == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images are required"})
		return
	}

	urls, err := h.service.UploadImages(
		c.Request.Context(),
		c.Param("id"),
		userID,
		form.File["images"],
	)
	switch err {
	case nil:
	case ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	case ErrUnauthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "images uploaded successfully",
		"images":  urls,
	})
}
