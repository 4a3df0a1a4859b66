package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/catalog"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// GetStorefrontCategories lists verticals with per-category product
// counts, always led by a synthetic "All Products" entry.
func GetStorefrontCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, verticals, err := loadSnapshot(ctx)
	if err != nil {
		log.Printf("[storefront] snapshot load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	counts := catalog.BuildCategoryCounts(products, verticals)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", counts))
}
