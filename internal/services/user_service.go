package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/apperrors"
	"github.com/setu-platform/setu-admin/internal/models"
)

// userPageSize matches the dashboard's user table.
const userPageSize = 10

// User status filter values accepted by List.
const (
	UserFilterAll     = "all"
	UserFilterActive  = "active"
	UserFilterBlocked = "blocked"
	UserFilterPending = "pending"
)

type UserListParams struct {
	Page   int
	Search string
	Status string
	Role   string
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// List pages through users at the database rather than in memory: the user
// table is the one listing expected to outgrow a single wide read. Search
// OR-matches first name, last name and email, case-insensitively.
func (s *UserService) List(ctx context.Context, p UserListParams) ([]models.User, int, error) {
	if p.Page < 1 {
		p.Page = 1
	}

	q := s.DB.WithContext(ctx).Model(&models.User{})
	if p.Search != "" {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	switch p.Status {
	case "", UserFilterAll:
	case UserFilterActive:
		q = q.Where("is_verified_user = ?", true)
	case UserFilterBlocked:
		q = q.Where("is_blocked = ?", true)
	case UserFilterPending:
		q = q.Where("is_verified_user = ? AND is_blocked = ?", false, false)
	default:
		return nil, 0, apperrors.FieldError("status", "Invalid status filter")
	}
	if p.Role != "" && p.Role != UserFilterAll {
		q = q.Where("role = ?", p.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := q.Order("updated_at DESC").
		Offset((p.Page - 1) * userPageSize).
		Limit(userPageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int((total + userPageSize - 1) / userPageSize)
	return users, totalPages, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ToggleBlock flips the blocked flag and returns the updated user.
func (s *UserService) ToggleBlock(ctx context.Context, id string) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsBlocked = !user.IsBlocked
	err = s.DB.WithContext(ctx).Model(user).
		Update("is_blocked", user.IsBlocked).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SoftDelete marks the account deleted without dropping the row, history
// attached to the user (applications, reports) stays readable.
func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(user).
		Update("is_deleted", true).Error
}
