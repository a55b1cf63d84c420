package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	"garage/infras/otel/mocks"
	s3Mocks "garage/infras/s3/mocks"
	bookingMocks "garage/internal/domains/booking/mocks"
	vehicleMocks "garage/internal/domains/vehicle/mocks"
	"garage/internal/domains/vehicle/model"
	"garage/internal/domains/vehicle/model/dto"
	"garage/internal/domains/vehicle/service"
	cacheMocks "garage/shared/cache/mocks"
	"garage/shared/constant"
	"garage/shared/failure"
	"garage/shared/principal"
)

func newVehicleService(t *testing.T) (
	service.Vehicle,
	*vehicleMocks.MockVehicle,
	*bookingMocks.MockBooking,
	*cacheMocks.MockRedisCache,
	*s3Mocks.MockS3,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := vehicleMocks.NewMockVehicle(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "garage-assets"

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockBookingRepo, mockCache, mockS3
}

func TestVehicleService_Create(t *testing.T) {
	svc, mockRepo, _, mockCache, _ := newVehicleService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	adminCtx := principal.WithContext(context.Background(), principal.Principal{
		UserID: "admin-id",
		Role:   constant.RoleAdmin,
	})

	req := dto.CreateVehicleRequest{
		VehicleName:        "Toyota Avanza",
		Type:               "car",
		RegistrationNumber: "B 1234 XYZ",
		DailyRentPrice:     100,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation starts available",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "registration number already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(adminCtx, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, constant.VehicleStatusAvailable, result.AvailabilityStatus)
			}
		})
	}
}

func TestVehicleService_Delete(t *testing.T) {
	svc, mockRepo, mockBookingRepo, mockCache, mockS3 := newVehicleService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockS3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("car.png").AnyTimes()
	mockS3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	imageURL := "https://garage-assets.s3.amazonaws.com/vehicle/car.png"

	vehicle := model.Vehicle{
		ID:                 "vehicle-id",
		VehicleName:        "Toyota Avanza",
		RegistrationNumber: "B 1234 XYZ",
		AvailabilityStatus: constant.VehicleStatusAvailable,
		ImageURL:           &imageURL,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicle, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "vehicle not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "vehicle has active bookings",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicle, nil)

				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "vehicle-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehicleService_UploadImage(t *testing.T) {
	svc, mockRepo, _, mockCache, mockS3 := newVehicleService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.UploadImageRequest{
		Image: &multipart.FileHeader{Filename: "car.png"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantURL   string
	}{
		{
			name: "successful upload",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "garage-assets", model.EntityName, gomock.Any(), gomock.Any(), "car.png").
					Return("https://garage-assets.s3.amazonaws.com/vehicle/car.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantURL: "https://garage-assets.s3.amazonaws.com/vehicle/car.png",
		},
		{
			name: "vehicle not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "upload error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UploadImage(context.Background(), req, "vehicle-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, result.URL)
				assert.Equal(t, "car.png", result.FileName)
			}
		})
	}
}
