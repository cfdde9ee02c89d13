package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/forms"
	"github.com/setu-platform/setu-admin/internal/services"
	"github.com/setu-platform/setu-admin/internal/status"
)

// ApplicationHandler exposes the status workflow. The status picker in the
// dashboard is a dialog select, so the payload is validated through the same
// form engine as the CRUD dialogs.
type ApplicationHandler struct {
	Service *services.ApplicationService
	Logger  *logrus.Logger
	schema  forms.Schema
}

func NewApplicationHandler(svc *services.ApplicationService, logger *logrus.Logger) *ApplicationHandler {
	options := make([]string, 0, len(status.All))
	for _, s := range status.All {
		options = append(options, string(s))
	}
	return &ApplicationHandler{
		Service: svc,
		Logger:  logger,
		schema: forms.Schema{Fields: []forms.Field{
			forms.SelectField{Name: "status", Label: "Status", Required: true, Options: options},
		}},
	}
}

func (h *ApplicationHandler) Register(rg *gin.RouterGroup) {
	rg.PATCH("/applications/:id/status", h.SetStatus)
	rg.GET("/applications/statuses", h.ListStatuses)
}

// SetStatus moves one application to a new status and returns the updated
// record so the caller can reconcile its optimistic local copy.
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.schema.Validate(payload); err != nil {
		respondError(c, h.Logger, "update application status", err)
		return
	}
	next := status.Status(forms.String(payload, "status"))
	app, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), next)
	if err != nil {
		respondError(c, h.Logger, "update application status", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListStatuses returns the vocabulary with its display mapping so the
// dashboard renders badges without hardcoding the set.
func (h *ApplicationHandler) ListStatuses(c *gin.Context) {
	out := make([]gin.H, 0, len(status.All))
	for _, s := range status.All {
		d := status.DisplayFor(s)
		out = append(out, gin.H{
			"status":   s,
			"label":    d.Label,
			"icon":     d.Icon,
			"category": d.Category,
		})
	}
	c.JSON(http.StatusOK, out)
}
