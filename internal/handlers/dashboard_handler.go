package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
	Logger  *logrus.Logger
}

func NewDashboardHandler(svc *services.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Service: svc, Logger: logger}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "fetch dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
