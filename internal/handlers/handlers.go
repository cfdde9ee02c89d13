package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/apperrors"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the service error taxonomy onto HTTP. Validation
// failures keep their per-field messages for inline rendering, everything
// else collapses into the generic toast text the dashboard shows.
func respondError(c *gin.Context, logger *logrus.Logger, action string, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to " + action})
	default:
		logger.Errorf("%s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// listQuery carries the table view-state sent with a listing request.
type listQuery struct {
	page    int
	perPage int
	term    string
}

func parseListQuery(c *gin.Context) listQuery {
	q := listQuery{term: c.Query("q")}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		q.page = v
	}
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 {
		q.perPage = v
	}
	return q
}
