package model

import "garage/shared/model"

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID                 = "id"
	FieldVehicleName        = "vehicle_name"
	FieldType               = "type"
	FieldRegistrationNumber = "registration_number"
	FieldDailyRentPrice     = "daily_rent_price"
	FieldAvailabilityStatus = "availability_status"
	FieldImageURL           = "image_url"
)

type Vehicle struct {
	ID                 string  `db:"id"`
	VehicleName        string  `db:"vehicle_name"`
	Type               string  `db:"type"`
	RegistrationNumber string  `db:"registration_number"`
	DailyRentPrice     float64 `db:"daily_rent_price"`
	AvailabilityStatus string  `db:"availability_status"`
	ImageURL           *string `db:"image_url"`
	model.Metadata
}
