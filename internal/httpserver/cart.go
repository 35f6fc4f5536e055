package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/service/cart"
	"mavazimarket/internal/service/catalog"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartJSON(st *cart.State) cartResponse {
	items := st.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:      items,
		ItemCount:  st.TotalItemCount(),
		TotalCents: st.TotalAmountCents(),
	}
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartJSON(sessionFrom(c).Cart()))
	}
}

func addCartItemHandler(products *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "productId is required")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		product, err := products.GetProductByID(c.Request.Context(), req.ProductID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		sess := sessionFrom(c)
		item, err := sess.Cart().AddItem(c.Request.Context(), *product, req.Quantity, req.Size, req.Color)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item, "cart": cartJSON(sess.Cart())})
	}
}

func updateCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "quantity is required")
			return
		}
		sess := sessionFrom(c)
		if err := sess.Cart().SetQuantity(c.Request.Context(), c.Param("itemID"), req.Quantity); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartJSON(sess.Cart()))
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if err := sess.Cart().RemoveItem(c.Request.Context(), c.Param("itemID")); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to remove item")
			return
		}
		c.JSON(http.StatusOK, cartJSON(sess.Cart()))
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if err := sess.Cart().Clear(c.Request.Context()); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, cartJSON(sess.Cart()))
	}
}
