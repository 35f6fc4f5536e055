package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mavazimarket/internal/service/wishlist"
)

func wishlistJSON(st *wishlist.State) wishlistResponse {
	ids := st.List()
	if ids == nil {
		ids = []string{}
	}
	return wishlistResponse{ProductIDs: ids}
}

func getWishlistHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistJSON(sessionFrom(c).Wishlist()))
	}
}

func addWishlistHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if err := sess.Wishlist().Add(c.Request.Context(), c.Param("productID")); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, wishlistJSON(sess.Wishlist()))
	}
}

func removeWishlistHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if err := sess.Wishlist().Remove(c.Request.Context(), c.Param("productID")); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to remove from wishlist")
			return
		}
		c.JSON(http.StatusOK, wishlistJSON(sess.Wishlist()))
	}
}
