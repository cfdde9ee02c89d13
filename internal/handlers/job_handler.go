package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/setu-platform/setu-admin/internal/dtos"
	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/pagination"
	"github.com/setu-platform/setu-admin/internal/services"
)

type JobHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
	Logger             *logrus.Logger
	ClampPages         bool
}

func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService, logger *logrus.Logger, clampPages bool) *JobHandler {
	return &JobHandler{
		JobService:         jobs,
		ApplicationService: apps,
		Logger:             logger,
		ClampPages:         clampPages,
	}
}

func (h *JobHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.List)
	rg.POST("/jobs", h.Create)
	rg.GET("/jobs/:id", h.Get)
	rg.PUT("/jobs/:id", h.Update)
	rg.DELETE("/jobs/:id", h.Delete)
	rg.GET("/jobs/:id/applications", h.ListApplications)
}

// List returns one table page of jobs, searchable by title name.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.GetAllJobs(c.Request.Context())
	if err != nil {
		// List reads degrade to an empty table rather than an error screen.
		h.Logger.Errorf("list jobs: %v", err)
		jobs = []models.Job{}
	}
	q := parseListQuery(c)
	tbl := pagination.New(jobs, func(j models.Job) string { return j.Title.Name }, pagination.Options{
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

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.JobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "fetch job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, "create job", err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Logger, "update job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.JobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "delete job", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListApplications returns one table page of a job's applied candidates,
// searchable by applicant name.
func (h *JobHandler) ListApplications(c *gin.Context) {
	apps, err := h.ApplicationService.ListForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "fetch applications", err)
		return
	}
	q := parseListQuery(c)
	tbl := pagination.New(apps, func(a models.AppliedJob) string {
		return a.User.FirstName + " " + a.User.LastName
	}, pagination.Options{
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
