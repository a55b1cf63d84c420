package dto

import (
	"mime/multipart"

	"garage/internal/domains/vehicle/model"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	VehicleName        string  `json:"vehicle_name"        validate:"required"`
	Type               string  `json:"type"                validate:"required"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price"    validate:"required,gt=0"`
	AvailabilityStatus string  `json:"availability_status" validate:"omitempty,oneof=available booked"`
}

func (r *CreateVehicleRequest) ToModel(actor string) model.Vehicle {
	availability := r.AvailabilityStatus
	if availability == "" {
		availability = constant.VehicleStatusAvailable
	}

	return model.Vehicle{
		ID:                 uuid.NewString(),
		VehicleName:        r.VehicleName,
		Type:               r.Type,
		RegistrationNumber: r.RegistrationNumber,
		DailyRentPrice:     r.DailyRentPrice,
		AvailabilityStatus: availability,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateVehicleRequest struct {
	VehicleName        *string  `db:"vehicle_name"        json:"vehicle_name,omitempty"`
	Type               *string  `db:"type"                json:"type,omitempty"`
	RegistrationNumber *string  `db:"registration_number" json:"registration_number,omitempty"`
	DailyRentPrice     *float64 `db:"daily_rent_price"    json:"daily_rent_price,omitempty"    validate:"omitempty,gt=0"`
	AvailabilityStatus *string  `db:"availability_status" json:"availability_status,omitempty" validate:"omitempty,oneof=available booked"`
}

type VehicleResponse struct {
	ID                 string  `json:"id"`
	VehicleName        string  `json:"vehicle_name"`
	Type               string  `json:"type"`
	RegistrationNumber string  `json:"registration_number"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
	AvailabilityStatus string  `json:"availability_status"`
	ImageURL           *string `json:"image_url,omitempty"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(model model.Vehicle) {
	r.ID = model.ID
	r.VehicleName = model.VehicleName
	r.Type = model.Type
	r.RegistrationNumber = model.RegistrationNumber
	r.DailyRentPrice = model.DailyRentPrice
	r.AvailabilityStatus = model.AvailabilityStatus
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []model.Vehicle, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, mod := range models {
		r.Vehicles[i].FromModel(mod)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromUpload(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
