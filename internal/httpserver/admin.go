package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/service/catalog"
	"mavazimarket/internal/service/order"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func upsertProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			respondError(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		saved, err := svc.UpsertProduct(c.Request.Context(), p)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func deleteProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func upsertCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cat domain.Category
		if err := c.ShouldBindJSON(&cat); err != nil {
			respondError(c, http.StatusBadRequest, "invalid category payload")
			return
		}
		saved, err := svc.UpsertCategory(c.Request.Context(), cat)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func deleteCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminListOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
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

func adminUpdateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "status is required")
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("orderID"), req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
