package contact_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/services"
)

var upstream *services.UpstreamClient

// Init wires the upstream client. Called once from main.
func Init(client *services.UpstreamClient) {
	upstream = client
}

// SubmitContact validates and forwards an inquiry to the backend. This
// is a write path: a forwarding failure is surfaced so the visitor can
// retry with their data intact.
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, a valid email and a message are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := upstream.SubmitContact(ctx, req); err != nil {
		log.Printf("[contact] submission failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to submit inquiry, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inquiry submitted successfully", nil))
}
