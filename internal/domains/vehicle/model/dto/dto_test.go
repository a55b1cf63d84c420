package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garage/internal/domains/vehicle/model/dto"
	"garage/shared/constant"
	"garage/shared/validator"
)

func TestCreateVehicleRequest_ToModel(t *testing.T) {
	tests := []struct {
		name           string
		req            dto.CreateVehicleRequest
		expectedStatus string
	}{
		{
			name: "availability defaults to available",
			req: dto.CreateVehicleRequest{
				VehicleName:        "Toyota Avanza",
				Type:               "MPV",
				RegistrationNumber: "B 1234 CD",
				DailyRentPrice:     350000,
			},
			expectedStatus: constant.VehicleStatusAvailable,
		},
		{
			name: "explicit booked status kept",
			req: dto.CreateVehicleRequest{
				VehicleName:        "Honda Brio",
				Type:               "Hatchback",
				RegistrationNumber: "B 5678 EF",
				DailyRentPrice:     250000,
				AvailabilityStatus: constant.VehicleStatusBooked,
			},
			expectedStatus: constant.VehicleStatusBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := tt.req.ToModel("actor-id")

			assert.NotEmpty(t, vehicle.ID)
			assert.Equal(t, tt.req.VehicleName, vehicle.VehicleName)
			assert.Equal(t, tt.req.RegistrationNumber, vehicle.RegistrationNumber)
			assert.Equal(t, tt.expectedStatus, vehicle.AvailabilityStatus)
			assert.Equal(t, "actor-id", vehicle.CreatedBy)
			assert.Equal(t, "actor-id", vehicle.ModifiedBy)
		})
	}
}

func TestCreateVehicleRequest_Validation(t *testing.T) {
	req := dto.CreateVehicleRequest{
		VehicleName:        "Toyota Avanza",
		Type:               "MPV",
		RegistrationNumber: "B 1234 CD",
		DailyRentPrice:     350000,
		AvailabilityStatus: "in-the-shop",
	}

	assert.Error(t, validator.ValidateStruct(&req))

	req.AvailabilityStatus = constant.VehicleStatusAvailable
	assert.NoError(t, validator.ValidateStruct(&req))
}
