package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/forms"
	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/pagination"
	"github.com/setu-platform/setu-admin/internal/services"
)

type ReportHandler struct {
	Service    *services.ReportService
	Logger     *logrus.Logger
	ClampPages bool
	schema     forms.Schema
}

func NewReportHandler(svc *services.ReportService, logger *logrus.Logger, clampPages bool) *ReportHandler {
	return &ReportHandler{
		Service:    svc,
		Logger:     logger,
		ClampPages: clampPages,
		schema: forms.Schema{Fields: []forms.Field{
			forms.SelectField{
				Name:     "status",
				Label:    "Status",
				Required: true,
				Options:  []string{models.ReportStatusPending, models.ReportStatusResolved},
			},
		}},
	}
}

func (h *ReportHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/reports", h.List)
	rg.GET("/reports/:id", h.Details)
	rg.PATCH("/reports/:id/status", h.UpdateStatus)
	rg.DELETE("/reports/:id", h.Delete)
	rg.POST("/reports/:id/remove-content", h.RemoveContent)
}

// List returns one table page of reports, searchable by category.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Errorf("list reports: %v", err)
		reports = []models.Report{}
	}
	q := parseListQuery(c)
	tbl := pagination.New(reports, func(r models.Report) string { return r.Category }, pagination.Options{
		PerPage:   q.perPage,
		ClampPage: h.ClampPages,
	})
	if q.term != "" {
		tbl.Search(q.term)
	}
	if q.page > 0 {
		tbl.Goto(q.page)
	}
	c.JSON(http.StatusOK, tbl.Page())
}

func (h *ReportHandler) Details(c *gin.Context) {
	details, err := h.Service.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "fetch report", err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.schema.Validate(payload); err != nil {
		respondError(c, h.Logger, "update report", err)
		return
	}
	err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), forms.String(payload, "status"))
	if err != nil {
		respondError(c, h.Logger, "update report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "delete report", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReportHandler) RemoveContent(c *gin.Context) {
	if err := h.Service.RemoveContent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "remove reported content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
