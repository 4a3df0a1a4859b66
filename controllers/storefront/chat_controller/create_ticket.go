package chat_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// CreateTicket files a support ticket through the active chat session.
// Ticket failures are surfaced, unlike message failures which degrade
// to a fallback reply.
func CreateTicket(c *gin.Context) {
	var req models.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name and a valid email are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ticketID, err := resolver.CreateTicket(ctx, req)
	if err != nil {
		log.Printf("[chat] ticket creation failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to create ticket, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket created successfully", gin.H{
		"ticket_id": ticketID,
	}))
}
