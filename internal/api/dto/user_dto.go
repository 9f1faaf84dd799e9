package dto

import (
	"time"

	"github.com/spec-kit/admin-console/internal/directory"
	"github.com/spec-kit/admin-console/internal/domain"
)

// UserResponse is a directory member as returned to clients.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       domain.Role       `json:"role"`
	Status     domain.UserStatus `json:"status"`
	Department *string           `json:"department"`
	Avatar     *string           `json:"avatar"`
	CreatedAt  time.Time         `json:"created_at"`
	LastLogin  *time.Time        `json:"last_login"`
}

// Pagination describes the page served and the size of the full result.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// UserListResponse wraps one page of a directory query.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// CreateUserRequest payload.
type CreateUserRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       domain.Role       `json:"role"`
	Status     domain.UserStatus `json:"status"`
	Department *string           `json:"department"`
	Avatar     *string           `json:"avatar"`
}

// UpdateUserRequest payload. Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name       *string            `json:"name"`
	Email      *string            `json:"email"`
	Role       *domain.Role       `json:"role"`
	Status     *domain.UserStatus `json:"status"`
	Department *string            `json:"department"`
	Avatar     *string            `json:"avatar"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		Department: u.Department,
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt.UTC(),
		LastLogin:  u.LastLogin,
	}
}

// NewUserListResponse maps a query result.
func NewUserListResponse(res directory.PageResult) UserListResponse {
	items := make([]UserResponse, 0, len(res.Users))
	for _, u := range res.Users {
		items = append(items, NewUserResponse(u))
	}
	return UserListResponse{
		Data: items,
		Pagination: Pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages(),
		},
	}
}
