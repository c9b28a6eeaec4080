package drive

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"festhub/pkg/models"
)

type Handler struct {
	Lister *Lister
}

func NewHandler(lister *Lister) *Handler {
	return &Handler{Lister: lister}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drive", h.list)
	rg.POST("/drive", h.list)
}

func (h *Handler) list(c *gin.Context) {
	files, err := h.Lister.ListFiles(c.Request.Context())
	if err != nil {
		log.Printf("[drive] listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"files": []models.DriveFile{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"files": files,
		"count": len(files),
	})
}
