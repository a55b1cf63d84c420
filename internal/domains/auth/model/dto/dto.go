package dto

import (
	"garage/infras/jwt"
	userModel "garage/internal/domains/user/model"
	userDto "garage/internal/domains/user/model/dto"
	"garage/shared/constant"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin customer"`
}

func (r *SignupRequest) ToUserModel(actor string, hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	return userModel.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Phone:    &r.Phone,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string               `json:"token"`
	TokenType string               `json:"token_type"`
	ExpiresIn int64                `json:"expires_in"`
	User      userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromSessionToken(token *jwt.SessionToken, user userModel.User) {
	l.Token = token.Token
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
	l.User.FromModel(user)
}

type SignupResponse struct {
	User userDto.UserResponse `json:"user"`
}

func (s *SignupResponse) FromUserModel(user userModel.User) {
	s.User.FromModel(user)
}
