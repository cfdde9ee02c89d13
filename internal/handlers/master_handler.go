package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/forms"
	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/pagination"
	"github.com/setu-platform/setu-admin/internal/services"
)

// masterResource is the untyped face of one master-data entity: the
// generic service behind it plus the dialog schema that guards writes.
type masterResource struct {
	schema forms.Schema
	create func(ctx context.Context, f models.MasterFields) (any, error)
	list   func(ctx context.Context, q listQuery) (any, error)
	search func(ctx context.Context, term string) (any, error)
	update func(ctx context.Context, id string, f models.MasterFields) (any, error)
	remove func(ctx context.Context, id string) error
}

func newMasterResource[T any, PT models.MasterPtr[T]](db *gorm.DB, clampPages bool, schema forms.Schema) masterResource {
	svc := services.NewMasterService[T, PT](db)
	nameOf := func(v T) string { return PT(&v).GetName() }
	return masterResource{
		schema: schema,
		create: func(ctx context.Context, f models.MasterFields) (any, error) {
			return svc.Create(ctx, f)
		},
		list: func(ctx context.Context, q listQuery) (any, error) {
			items, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			tbl := pagination.New(items, nameOf, pagination.Options{
				PerPage:   q.perPage,
				ClampPage: clampPages,
			})
			if q.term != "" {
				tbl.Search(q.term)
			}
			if q.page > 0 {
				tbl.Goto(q.page)
			}
			return tbl.Page(), nil
		},
		search: func(ctx context.Context, term string) (any, error) {
			return svc.Search(ctx, term)
		},
		update: func(ctx context.Context, id string, f models.MasterFields) (any, error) {
			return svc.Update(ctx, id, f)
		},
		remove: svc.Delete,
	}
}

// MasterHandler serves all seven master-data tables through one route set
// keyed by the :entity path segment.
type MasterHandler struct {
	Logger    *logrus.Logger
	resources map[string]masterResource
}

func NewMasterHandler(db *gorm.DB, logger *logrus.Logger, clampPages bool) *MasterHandler {
	nameOnly := forms.Schema{Fields: []forms.Field{
		forms.TextField{Name: "name", Label: "Name", Required: true, MaxLen: 200},
	}}
	university := forms.Schema{Fields: []forms.Field{
		forms.TextField{Name: "name", Label: "Name", Required: true, MaxLen: 200},
		forms.TextField{Name: "location", Label: "Location", MaxLen: 200},
		forms.TextField{Name: "country", Label: "Country", MaxLen: 100},
		forms.TextField{Name: "website", Label: "Website", Format: forms.FormatURL},
	}}
	company := forms.Schema{Fields: []forms.Field{
		forms.TextField{Name: "name", Label: "Name", Required: true, MaxLen: 200},
		forms.TextField{Name: "logo", Label: "Logo", Format: forms.FormatURL},
		forms.TextField{Name: "industry", Label: "Industry", MaxLen: 100},
		forms.TextField{Name: "website", Label: "Website", Format: forms.FormatURL},
		forms.TextField{Name: "location", Label: "Location", MaxLen: 200},
	}}

	return &MasterHandler{
		Logger: logger,
		resources: map[string]masterResource{
			"certification": newMasterResource[models.CertificationMaster, *models.CertificationMaster](db, clampPages, nameOnly),
			"degree":        newMasterResource[models.DegreeMaster, *models.DegreeMaster](db, clampPages, nameOnly),
			"skill":         newMasterResource[models.SkillMaster, *models.SkillMaster](db, clampPages, nameOnly),
			"jobtitle":      newMasterResource[models.JobTitleMaster, *models.JobTitleMaster](db, clampPages, nameOnly),
			"fieldofstudy":  newMasterResource[models.FieldOfStudyMaster, *models.FieldOfStudyMaster](db, clampPages, nameOnly),
			"university":    newMasterResource[models.UniversityMaster, *models.UniversityMaster](db, clampPages, university),
			"company":       newMasterResource[models.CompanyMaster, *models.CompanyMaster](db, clampPages, company),
		},
	}
}

func (h *MasterHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/masters/:entity", h.List)
	rg.POST("/masters/:entity", h.Create)
	rg.GET("/masters/:entity/search", h.Search)
	rg.PUT("/masters/:entity/:id", h.Update)
	rg.DELETE("/masters/:entity/:id", h.Delete)
}

func (h *MasterHandler) resource(c *gin.Context) (masterResource, bool) {
	res, ok := h.resources[c.Param("entity")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown master type: " + c.Param("entity")})
	}
	return res, ok
}

// bindFields validates the raw payload against the entity's dialog schema
// and extracts the shared writable fields.
func (h *MasterHandler) bindFields(c *gin.Context, res masterResource, action string) (models.MasterFields, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return models.MasterFields{}, false
	}
	if err := res.schema.Validate(payload); err != nil {
		respondError(c, h.Logger, action, err)
		return models.MasterFields{}, false
	}
	return models.MasterFields{
		Name:     forms.String(payload, "name"),
		Location: forms.String(payload, "location"),
		Country:  forms.String(payload, "country"),
		Website:  forms.String(payload, "website"),
		Logo:     forms.String(payload, "logo"),
		Industry: forms.String(payload, "industry"),
	}, true
}

func (h *MasterHandler) Create(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	fields, ok := h.bindFields(c, res, "create "+c.Param("entity"))
	if !ok {
		return
	}
	rec, err := res.create(c.Request.Context(), fields)
	if err != nil {
		respondError(c, h.Logger, "create "+c.Param("entity"), err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *MasterHandler) List(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	page, err := res.list(c.Request.Context(), parseListQuery(c))
	if err != nil {
		respondError(c, h.Logger, "list "+c.Param("entity"), err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MasterHandler) Search(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	items, err := res.search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.Logger, "search "+c.Param("entity"), err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MasterHandler) Update(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	fields, ok := h.bindFields(c, res, "update "+c.Param("entity"))
	if !ok {
		return
	}
	rec, err := res.update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, h.Logger, "update "+c.Param("entity"), err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MasterHandler) Delete(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	if err := res.remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "delete "+c.Param("entity"), err)
		return
	}
	c.Status(http.StatusNoContent)
}
