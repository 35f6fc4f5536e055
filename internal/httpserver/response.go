package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/domain"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps a service error to the appropriate status.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalCents int64             `json:"totalCents"`
}

type wishlistResponse struct {
	ProductIDs []string `json:"productIds"`
}
