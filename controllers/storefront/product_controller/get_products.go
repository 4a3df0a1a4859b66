package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/catalog"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// GetStorefrontProducts lists products with optional search, category
// and sorting, paginated. The filter/sort/paginate pipeline runs over
// the cached upstream snapshot, never against the network.
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, _, err := loadSnapshot(ctx)
	if err != nil {
		log.Printf("[storefront] snapshot load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	query := catalog.NewQuery()
	query.SetCategory(c.DefaultQuery("category", catalog.AllProducts))
	query.SetSearch(c.Query("q"))
	query.Sort = catalog.ParseSortOrder(c.DefaultQuery("sortBy", "featured"))
	query.Page = page
	query.PageSize = limit

	visible, total := catalog.Apply(products, query)
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		visible,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
