package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/service/order"
)

func checkoutHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		userID, ok := sess.UserID()
		if !ok {
			respondError(c, http.StatusUnauthorized, "sign in to check out")
			return
		}
		placed, err := svc.Place(c.Request.Context(), userID, sess.Cart())
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}

func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionFrom(c).UserID()
		if !ok {
			respondError(c, http.StatusUnauthorized, "sign in to view orders")
			return
		}
		orders, err := svc.ListForUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list orders")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionFrom(c).UserID()
		if !ok {
			respondError(c, http.StatusUnauthorized, "sign in to view orders")
			return
		}
		o, err := svc.Get(c.Request.Context(), userID, c.Param("orderID"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
