package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/chatbot"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/chat_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/contact_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/controllers/storefront/product_controller"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/routes/storefront_routes"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter backing store)
	config.ConnectRedis()

	// Upstream API client
	upstream := services.NewUpstreamClient(config.UpstreamBaseURL())
	product_controller.Init(upstream)
	contact_controller.Init(upstream)

	// Assistant resolver. Cache expiry defaults to 0 (disabled) so
	// visitors always get fresh upstream answers; set
	// CHAT_CACHE_EXPIRY to enable memoization.
	responseCache := chatbot.NewResponseCache(
		config.GetEnvInt("CHAT_CACHE_CAPACITY", chatbot.DefaultCacheCapacity),
		config.GetEnvDuration("CHAT_CACHE_EXPIRY", 0),
	)
	resolver := chatbot.NewResolver(upstream, responseCache)
	chat_controller.Init(resolver)
	log.Println("✅ Assistant resolver initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetEnv("FRONTEND_ORIGIN", "http://localhost:3000"), "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupContactRoutes(api)
	storefront_routes.SetupChatRoutes(api)
	log.Println("✅ Storefront routes registered")

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
