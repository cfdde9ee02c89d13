package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/services"
	"github.com/setu-platform/setu-admin/internal/status"
)

func testDB(t *testing.T, ms ...any) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(ms...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func masterRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testDB(t, &models.CertificationMaster{}, &models.UniversityMaster{})
	r := gin.New()
	NewMasterHandler(db, testLogger(), false).Register(r.Group("/api/v1"))
	return r, db
}

func TestMasterUnknownEntity(t *testing.T) {
	r, _ := masterRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/masters/starship", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMasterCreateValidation(t *testing.T) {
	r, _ := masterRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/masters/certification", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decode(t, w)
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("no per-field errors in %v", body)
	}
	if fields["name"] != "Name is required" {
		t.Errorf("name error = %v", fields["name"])
	}
}

func TestMasterCreateAndList(t *testing.T) {
	r, _ := masterRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/masters/certification", map[string]any{"name": "AWS Certified"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	if created["id"] == "" || created["id"] == nil {
		t.Error("created record has no id")
	}
	if created["name"] != "AWS Certified" {
		t.Errorf("created name = %v", created["name"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/masters/certification", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	page := decode(t, w)
	items, ok := page["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one record", page["items"])
	}
	if page["total_pages"] != float64(1) || page["current_page"] != float64(1) {
		t.Errorf("pagination envelope = %v", page)
	}
}

func TestMasterListPagination(t *testing.T) {
	r, db := masterRouter(t)

	for i := 0; i < 25; i++ {
		rec := models.CertificationMaster{}
		rec.Name = fmt.Sprintf("Cert %02d", i)
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/masters/certification?page=3", nil)
	page := decode(t, w)
	if page["total_pages"] != float64(3) {
		t.Errorf("total_pages = %v, want 3", page["total_pages"])
	}
	if items := page["items"].([]any); len(items) != 5 {
		t.Errorf("page 3 has %d items, want 5", len(items))
	}
	if page["has_next"] != false || page["has_prev"] != true {
		t.Errorf("page 3 bounds: has_next=%v has_prev=%v", page["has_next"], page["has_prev"])
	}

	// Search narrows before paging and reports the filtered totals.
	w = doJSON(t, r, http.MethodGet, "/api/v1/masters/certification?q=cert+01", nil)
	page = decode(t, w)
	if page["total_items"] != float64(1) {
		t.Errorf("search total_items = %v, want 1", page["total_items"])
	}
}

func TestMasterSearchEndpoint(t *testing.T) {
	r, db := masterRouter(t)

	rec := models.UniversityMaster{}
	rec.Name = "University of X"
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/masters/university/search?q=univ", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("search matched %d, want 1", len(items))
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/masters/university/search?q=u", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short search status = %d, want 400", w.Code)
	}
}

func TestMasterDeleteEndpoint(t *testing.T) {
	r, db := masterRouter(t)

	rec := models.CertificationMaster{}
	rec.Name = "PMP"
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/v1/masters/certification/"+rec.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/v1/masters/certification/"+rec.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func applicationRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testDB(t, &models.User{}, &models.Job{}, &models.AppliedJob{})
	svc := services.NewApplicationService(db, status.Policy{})
	r := gin.New()
	NewApplicationHandler(svc, testLogger()).Register(r.Group("/api/v1"))
	return r, db
}

func TestSetStatusEndpoint(t *testing.T) {
	r, db := applicationRouter(t)

	app := models.AppliedJob{
		JobID:         uuid.NewString(),
		UserID:        uuid.NewString(),
		Status:        string(status.Applied),
		LastUpdatedAt: time.Now().Add(-time.Hour),
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", map[string]any{"status": "HIRED"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["status"] != "HIRED" {
		t.Errorf("returned status = %v, want HIRED", body["status"])
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", map[string]any{"status": "GHOSTED"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status code = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing status code = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/applications/"+uuid.NewString()+"/status", map[string]any{"status": "HIRED"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown application code = %d, want 404", w.Code)
	}
}

func TestListStatusesEndpoint(t *testing.T) {
	r, _ := applicationRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/applications/statuses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != len(status.All) {
		t.Fatalf("got %d statuses, want %d", len(items), len(status.All))
	}
	for _, item := range items {
		if item["label"] == "" || item["icon"] == "" || item["category"] == "" {
			t.Errorf("incomplete display mapping: %v", item)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/health", HealthCheck)
	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
