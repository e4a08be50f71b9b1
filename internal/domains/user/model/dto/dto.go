package dto

import (
	"strings"

	"hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,notblank,max=120"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin staff"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleStaff
	}

	return model.User{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Name:     strings.TrimSpace(r.Name),
		Role:     role,
		IsActive: true,
		Metadata: gModel.NewMetadata(timezone.Now(), actor),
	}
}

// UpdateUserRequest is the allow-list of columns an admin may change.
type UpdateUserRequest struct {
	Name     *string `json:"name"      db:"name"      validate:"omitempty,notblank,max=120"`
	Role     *string `json:"role"      db:"role"      validate:"omitempty,oneof=admin staff"`
	IsActive *bool   `json:"is_active" db:"is_active"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	LastLogin *string `json:"last_login"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.LastLogin = nil

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
