package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/chat_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/contact_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/product_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/middleware"
)

// SetupStorefrontRoutes registers the public catalog surface.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)
		products.GET("/:id", product_controller.GetStorefrontProductByID)
	}

	store.GET("/categories", product_controller.GetStorefrontCategories)
}

// SetupContactRoutes registers the inquiry form endpoint behind the
// rate limiter.
func SetupContactRoutes(router *gin.RouterGroup) {
	contact := router.Group("/contact")
	contact.Use(middleware.RateLimiter(20, time.Minute))
	contact.POST("", contact_controller.SubmitContact)
}

// SetupChatRoutes registers the assistant endpoints behind the rate
// limiter.
func SetupChatRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	chat.Use(middleware.RateLimiter(60, time.Minute))
	{
		chat.POST("/messages", chat_controller.SendMessage)
		chat.POST("/tickets", chat_controller.CreateTicket)
		chat.GET("/history", chat_controller.GetHistory)
	}
}
