package certificates

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"festhub/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.search) // GET /certificates?query=
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/certificates", h.create)
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query param required"})
		return
	}

	certs, err := h.Repo.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": certs})
}

type createReq struct {
	EventID          string `json:"event_id"`
	ParticipantName  string `json:"participant_name"`
	ParticipantEmail string `json:"participant_email"`
	CertificateURL   string `json:"certificate_url"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req.ParticipantName = strings.TrimSpace(req.ParticipantName)
	req.ParticipantEmail = strings.TrimSpace(strings.ToLower(req.ParticipantEmail))
	if req.EventID == "" || req.ParticipantName == "" || req.ParticipantEmail == "" || req.CertificateURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields required"})
		return
	}

	regID, err := h.Repo.FindRegistrationID(c.Request.Context(), req.EventID, req.ParticipantEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cert := models.Certificate{
		ID:               uuid.NewString(),
		EventID:          req.EventID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		CertificateURL:   req.CertificateURL,
		RegistrationID:   regID,
	}

	if err := h.Repo.Create(c.Request.Context(), cert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cert)
}
