package chat_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// GetHistory returns prior messages for the active session. A fetch
// failure degrades to an empty history so the widget can still greet.
func GetHistory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	messages := resolver.History(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "History fetched successfully", gin.H{
		"messages": messages,
	}))
}
