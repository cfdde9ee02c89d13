package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/services"
)

type UserHandler struct {
	Service *services.UserService
	Logger  *logrus.Logger
}

func NewUserHandler(svc *services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
	rg.PATCH("/users/:id/block", h.ToggleBlock)
	rg.DELETE("/users/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	params := services.UserListParams{
		Page:   page,
		Search: c.Query("q"),
		Status: c.DefaultQuery("status", services.UserFilterAll),
		Role:   c.DefaultQuery("role", services.UserFilterAll),
	}
	users, totalPages, err := h.Service.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.Logger, "fetch users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"total_pages": totalPages,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "fetch user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ToggleBlock(c *gin.Context) {
	user, err := h.Service.ToggleBlock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Service.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}
