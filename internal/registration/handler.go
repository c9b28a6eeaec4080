package registration

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"festhub/internal/live"
	"festhub/internal/storage"
	"festhub/pkg/models"
)

type Handler struct {
	Repo    *Repo
	Storage *storage.Client
	Hub     *live.Hub
}

func NewHandler(repo *Repo, store *storage.Client, hub *live.Hub) *Handler {
	return &Handler{Repo: repo, Storage: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create) // POST /registrations
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/registrations", h.list)
	rg.PATCH("/registrations/:id/payment", h.updatePayment)
}

// create accepts the multipart registration form. The screenshot is
// uploaded to object storage first; the record insert only happens once
// its public URL is known.
func (h *Handler) create(c *gin.Context) {
	in := Input{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		College:       c.PostForm("college"),
		TransactionID: c.PostForm("transaction_id"),
		DepartmentID:  c.PostForm("department_id"),
		EventID:       c.PostForm("event_id"),
	}
	in.Trim()

	fieldErrs := in.Validate()

	file, err := c.FormFile("screenshot")
	if err != nil {
		fieldErrs["screenshot"] = "Screenshot is required"
	} else if msg := CheckScreenshot(file.Header.Get("Content-Type"), file.Size); msg != "" {
		fieldErrs["screenshot"] = msg
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read screenshot failed"})
		return
	}
	data, err := io.ReadAll(io.LimitReader(src, maxScreenshotBytes+1))
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read screenshot failed"})
		return
	}
	if int64(len(data)) > maxScreenshotBytes {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{
			"screenshot": "Screenshot must be 5 MB or smaller",
		}})
		return
	}

	objectPath := fmt.Sprintf("%s/%d_%s", in.EventID, time.Now().UnixMilli(), filepath.Base(file.Filename))
	screenshotURL, err := h.Storage.Upload(c.Request.Context(), objectPath, file.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reg := models.Registration{
		ID:            uuid.NewString(),
		EventID:       in.EventID,
		DepartmentID:  in.DepartmentID,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		College:       in.College,
		TransactionID: in.TransactionID,
		ScreenshotURL: screenshotURL,
		PaymentStatus: models.PaymentPending,
	}

	if err := h.Repo.Create(c.Request.Context(), reg); err != nil {
		if errors.Is(err, ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already registered for this event."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Re-read joined so the response and the broadcast carry the event
	// title and department names.
	if full, err := h.Repo.GetByID(c.Request.Context(), reg.ID); err == nil && full != nil {
		reg = *full
	}

	if h.Hub != nil {
		h.Hub.BroadcastJSON(live.RegistrationEvent{
			Type:           live.EventRegistrationCreated,
			RegistrationID: reg.ID,
			EventID:        reg.EventID,
			EventTitle:     reg.EventTitle,
			Name:           reg.Name,
			PaymentStatus:  reg.PaymentStatus,
			At:             time.Now().UTC(),
		})
	}

	c.JSON(http.StatusCreated, reg)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		EventID: c.Query("event"),
		Search:  c.Query("search"),
	}

	regs, err := h.Repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(regs),
		"items": regs,
	})
}

type paymentReq struct {
	Status string `json:"status"`
}

func (h *Handler) updatePayment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	id := c.Param("id")
	if err := h.Repo.UpdatePaymentStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Hub != nil {
		ev := live.RegistrationEvent{
			Type:           live.EventPaymentUpdated,
			RegistrationID: id,
			PaymentStatus:  req.Status,
			At:             time.Now().UTC(),
		}
		if full, err := h.Repo.GetByID(c.Request.Context(), id); err == nil && full != nil {
			ev.EventID = full.EventID
			ev.EventTitle = full.EventTitle
			ev.Name = full.Name
		}
		h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
