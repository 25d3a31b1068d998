package location

import (
	"net/http"
	"strconv"

	"github.com/Dilip-lamichhane/FinalPROJ/internal/geo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// --------------------------------------------------
// GET /location/resolve?lat&lng
// --------------------------------------------------
func (h *Handler) Resolve(c *gin.Context) {
	var coords *geo.Point

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" || lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		coords = &geo.Point{Lat: lat, Lng: lng}
	}

	resolved, err := h.resolver.Resolve(c.Request.Context(), coords)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolved)
}
