package handler

import (
	"time"

	"github.com/filmotheque/catalog-api/internal/core/domain"
)

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,password"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,password"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin user"`
}

// userResponse is the sanitized account view. The password hash never
// crosses this boundary.
type userResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
	if !u.UpdatedAt.IsZero() {
		updated := u.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}
