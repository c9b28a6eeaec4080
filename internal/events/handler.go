package events

import (
	"database/sql"
	"errors"
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

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/departments", h.listDepartments)
	router.GET("/events", h.listEvents)
	router.GET("/events/resolve", h.resolve)
	router.GET("/events/:id", h.getEvent)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.createEvent)
	rg.PUT("/events/:id", h.updateEvent)
	rg.DELETE("/events/:id", h.deleteEvent)
}

func (h *Handler) listDepartments(c *gin.Context) {
	depts, err := h.Repo.ListDepartments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": depts})
}

func (h *Handler) listEvents(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context(), c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) getEvent(c *gin.Context) {
	ev, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

// resolve answers the pre-selected-event case: given an event id from a
// share link, look up its department and return both selections in one
// response so the form can apply them atomically.
func (h *Handler) resolve(c *gin.Context) {
	eventID := strings.TrimSpace(c.Query("event"))
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event query param required"})
		return
	}

	ev, err := h.Repo.GetByID(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolve failed"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, Resolved(ev.DepartmentID, ev.ID))
}

type eventReq struct {
	DepartmentID string `json:"department_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventDate    string `json:"event_date"`
	Venue        string `json:"venue"`
	Fee          int    `json:"fee"`
}

func (h *Handler) createEvent(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.DepartmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and department_id required"})
		return
	}

	ev := models.Event{
		ID:           uuid.NewString(),
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Description:  req.Description,
		EventDate:    req.EventDate,
		Venue:        req.Venue,
		Fee:          req.Fee,
	}

	if err := h.Repo.Create(c.Request.Context(), ev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *Handler) updateEvent(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	ev := models.Event{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Venue:       req.Venue,
		Fee:         req.Fee,
	}

	if err := h.Repo.Update(c.Request.Context(), ev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
