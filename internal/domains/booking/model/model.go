package model

import (
	"garage/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldVehicleID  = "vehicle_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"
)

type Booking struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	VehicleID  string    `db:"vehicle_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	TotalPrice float64   `db:"total_price"`
	model.Metadata
}

// BookingDetail is the read model joining the customer and vehicle rows a
// booking references.
type BookingDetail struct {
	ID                 string    `db:"id"`
	CustomerID         string    `db:"customer_id"`
	VehicleID          string    `db:"vehicle_id"`
	StartDate          time.Time `db:"start_date"`
	EndDate            time.Time `db:"end_date"`
	Status             string    `db:"status"`
	TotalPrice         float64   `db:"total_price"`
	CustomerName       string    `db:"customer_name"       table:"users"    column:"name"`
	CustomerEmail      string    `db:"customer_email"      table:"users"    column:"email"`
	VehicleName        string    `db:"vehicle_name"        table:"vehicles"`
	VehicleType        string    `db:"vehicle_type"        table:"vehicles" column:"type"`
	RegistrationNumber string    `db:"registration_number" table:"vehicles"`
	model.Metadata
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN users ON users.id = bookings.customer_id JOIN vehicles ON vehicles.id = bookings.vehicle_id"
}
