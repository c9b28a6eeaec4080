package mailer

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Mail *Client
}

func NewHandler(mail *Client) *Handler {
	return &Handler{Mail: mail}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-pass", h.sendPass)
}

type sendPassReq struct {
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail"`
	EventName        string `json:"eventName"`
	RegistrationID   string `json:"registrationId"`
	EventDate        string `json:"eventDate"`
	Venue            string `json:"venue"`
}

// sendPass always answers HTTP 200: delivery failure is informational
// to the caller (the registration flow treats it as non-fatal), so the
// outcome lives in the body's success flag, not the status code.
func (h *Handler) sendPass(c *gin.Context) {
	var req sendPassReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid json"})
		return
	}

	req.ParticipantName = strings.TrimSpace(req.ParticipantName)
	req.ParticipantEmail = strings.TrimSpace(req.ParticipantEmail)
	req.EventName = strings.TrimSpace(req.EventName)
	req.RegistrationID = strings.TrimSpace(req.RegistrationID)

	if req.ParticipantEmail == "" || req.ParticipantName == "" ||
		req.EventName == "" || req.RegistrationID == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	venue := strings.TrimSpace(req.Venue)
	if venue == "" {
		venue = "TBA"
	}

	data := PassData{
		ParticipantName: req.ParticipantName,
		EventName:       req.EventName,
		RegistrationID:  req.RegistrationID,
		EntryCode:       NewEntryCode(),
		EventDate:       FormatEventDate(req.EventDate),
		Venue:           venue,
	}

	html, err := BuildPassHTML(data)
	if err != nil {
		log.Printf("[mailer] render failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	subject := "🎫 Your Event Pass — " + req.EventName + " | Kapricious 2026"
	emailID, err := h.Mail.Send(c.Request.Context(), req.ParticipantEmail, subject, html, BuildPassText(data))
	if err != nil {
		log.Printf("[mailer] send failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"entryCode": data.EntryCode,
		"emailId":   emailID,
	})
}
