package export

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"festhub/internal/registration"
	"festhub/pkg/models"
)

// Column order of the exported sheet; row-map keys derive from these
// via lookupKey.
var exportHeaders = []string{
	"Name", "Email", "Phone", "College", "Department", "Event",
	"Transaction ID", "Screenshot Link", "Payment Status", "Registration Time",
}

const timestampLayout = "02 Jan 2006 15:04"

type Handler struct {
	Regs *registration.Repo
}

func NewHandler(regs *registration.Repo) *Handler {
	return &Handler{Regs: regs}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.export)
}

type exportReq struct {
	EventID string `json:"eventId"`
}

func (h *Handler) export(c *gin.Context) {
	var req exportReq
	_ = c.ShouldBindJSON(&req) // body is optional; empty means all events

	regs, err := h.Regs.List(c.Request.Context(), registration.ListQuery{EventID: req.EventID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := Workbook(regs)

	title := ""
	if req.EventID != "" && req.EventID != "all" && len(regs) > 0 {
		title = regs[0].EventTitle
	}

	c.JSON(http.StatusOK, gin.H{
		"base64":   base64.StdEncoding.EncodeToString(data),
		"filename": Filename(title),
	})
}

// Workbook encodes joined registrations with the standard column set.
func Workbook(regs []models.Registration) []byte {
	rows := make([]map[string]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, exportRow(r))
	}
	return EncodeWorkbook(rows, exportHeaders)
}

// exportRow flattens a joined registration; values pass through
// unmodified apart from renaming, the pending default and timestamp
// rendering.
func exportRow(r models.Registration) map[string]string {
	status := r.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}

	timestamp := ""
	if !r.CreatedAt.IsZero() {
		timestamp = r.CreatedAt.Format(timestampLayout)
	}

	return map[string]string{
		"name":              r.Name,
		"email":             r.Email,
		"phone":             r.Phone,
		"college":           r.College,
		"department":        r.DepartmentName,
		"event":             r.EventTitle,
		"transaction_id":    r.TransactionID,
		"screenshot_link":   r.ScreenshotURL,
		"payment_status":    status,
		"registration_time": timestamp,
	}
}

// Filename derives the download name from the event title, spaces
// collapsed to underscores; no title means the unfiltered export.
func Filename(eventTitle string) string {
	slug := strings.Join(strings.Fields(eventTitle), "_")
	if slug == "" {
		slug = "all_events"
	}
	return "registrations_" + slug + ".xls"
}
