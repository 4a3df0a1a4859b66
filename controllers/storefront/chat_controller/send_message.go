package chat_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/chatbot"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

var resolver *chatbot.Resolver

// Init wires the dialogue resolver. Called once from main.
func Init(r *chatbot.Resolver) {
	resolver = r
}

// SendMessage resolves a visitor message through the cache → intent →
// upstream → fallback chain. Every resolution path ends in a valid
// reply, so this endpoint always answers 200 once the input binds.
func SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A message is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(config.ChatSendTimeout)
	defer cancel()

	reply := resolver.SendMessage(ctx, req.Message)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message resolved", reply))
}
