package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	"garage/infras/jwt"
	jwtMocks "garage/infras/jwt/mocks"
	"garage/infras/otel/mocks"
	"garage/internal/domains/auth/model/dto"
	"garage/internal/domains/auth/service"
	userMocks "garage/internal/domains/user/mocks"
	userModel "garage/internal/domains/user/model"
	"garage/shared/constant"
	"garage/shared/failure"
	"garage/shared/password"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.SignupRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantRole  string
	}{
		{
			name: "successful signup defaults to customer role",
			req: dto.SignupRequest{
				Name:     "Jane Customer",
				Email:    "jane@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantRole: constant.RoleCustomer,
		},
		{
			name: "signup keeps requested role",
			req: dto.SignupRequest{
				Name:     "Alex Admin",
				Email:    "alex@example.com",
				Password: "secret123",
				Role:     constant.RoleAdmin,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantRole: constant.RoleAdmin,
		},
		{
			name: "email already registered",
			req: dto.SignupRequest{
				Name:     "Jane Customer",
				Email:    "jane@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req: dto.SignupRequest{
				Name:     "Jane Customer",
				Email:    "jane@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Signup(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.User.ID)
				assert.Equal(t, tt.req.Email, result.User.Email)
				assert.Equal(t, tt.wantRole, result.User.Role)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("secret123")
	assert.NoError(t, err)

	user := userModel.User{
		ID:       "user-id",
		Name:     "Jane Customer",
		Email:    "jane@example.com",
		Password: hashed,
		Role:     constant.RoleCustomer,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "jane@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateToken("user-id", "jane@example.com", constant.RoleCustomer).
					Return(&jwt.SessionToken{
						Token:     "signed-token",
						TokenType: "Bearer",
						ExpiresIn: 3600,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "jane@example.com",
				Password: "not-the-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "jane@example.com",
				Password: "secret123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "signed-token", result.Token)
				assert.Equal(t, "Bearer", result.TokenType)
				assert.Equal(t, "jane@example.com", result.User.Email)
			}
		})
	}
}
