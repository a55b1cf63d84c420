package dto

import (
	"garage/internal/domains/user/model"
	"garage/shared"
	gDto "garage/shared/dto"
)

type UserResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  validate:"omitempty,min=1"`
	Email *string `db:"email" json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `db:"phone" json:"phone,omitempty"`
	Role  *string `db:"role"  json:"role,omitempty"  validate:"omitempty,oneof=admin customer"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
