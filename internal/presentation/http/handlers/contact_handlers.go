package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
)

// ContactHandlers handles the public contact form endpoint
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewContactHandlers creates contact handlers
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{contactService: contactService, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PostContact handles POST /api/contact. The message is forwarded by
// email and never persisted.
func (h *ContactHandlers) PostContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !h.contactService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not available"})
		return
	}

	if err := h.contactService.Submit(req.Name, req.Email, req.Message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
