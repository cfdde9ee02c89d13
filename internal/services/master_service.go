package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/apperrors"
	"github.com/setu-platform/setu-admin/internal/models"
)

// MinSearchLength is the shortest term the search endpoints will query
// with. The dashboard debounces and enforces the same bound client-side,
// this is the backstop.
const MinSearchLength = 2

// MasterService is the single CRUD service behind every master-data table.
// Instantiate it once per entity type; the entity's Apply method decides
// which of the shared writable fields it stores.
type MasterService[T any, PT models.MasterPtr[T]] struct {
	DB *gorm.DB
}

func NewMasterService[T any, PT models.MasterPtr[T]](db *gorm.DB) *MasterService[T, PT] {
	return &MasterService[T, PT]{DB: db}
}

// Create inserts a new record and returns it with the generated id and
// timestamps filled in.
func (s *MasterService[T, PT]) Create(ctx context.Context, f models.MasterFields) (PT, error) {
	var zero PT
	if strings.TrimSpace(f.Name) == "" {
		return zero, apperrors.FieldError("name", "Name is required")
	}
	rec := PT(new(T))
	rec.Apply(f)
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return zero, err
	}
	return rec, nil
}

// GetAll returns every record, newest first. The descending createdAt order
// is a deliberate convention shared by all master-data listings.
func (s *MasterService[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MasterService[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	var zero PT
	rec := PT(new(T))
	err := s.DB.WithContext(ctx).First(rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, apperrors.ErrNotFound
	}
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Search does a case-insensitive substring match on name, newest first.
func (s *MasterService[T, PT]) Search(ctx context.Context, term string) ([]T, error) {
	term = strings.TrimSpace(term)
	if len(term) < MinSearchLength {
		return nil, apperrors.FieldError("q", "Search term must be at least 2 characters")
	}
	out := []T{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the writable fields of an existing record and refreshes
// its updatedAt.
func (s *MasterService[T, PT]) Update(ctx context.Context, id string, f models.MasterFields) (PT, error) {
	var zero PT
	if strings.TrimSpace(f.Name) == "" {
		return zero, apperrors.FieldError("name", "Name is required")
	}
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	rec.Apply(f)
	if err := s.DB.WithContext(ctx).Save(rec).Error; err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes a record. It is not idempotent: deleting an id twice fails
// the second time.
func (s *MasterService[T, PT]) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(PT(new(T)), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
