package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/service/catalog"
)

func listCategoriesHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list categories")
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func getCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.GetCategory(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list products")
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.GetProduct(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
