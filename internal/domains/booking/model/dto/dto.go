package dto

import (
	"math"
	"time"

	"garage/internal/domains/booking/model"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID  string `json:"vehicle_id"            validate:"required"`
	CustomerID string `json:"customer_id,omitempty"`
	StartDate  string `json:"start_date"            validate:"required"`
	EndDate    string `json:"end_date"              validate:"required"`
}

// ToModel builds the booking with its rental price. The price is the vehicle's
// daily rate times the number of rental days, partial days rounded up.
func (r *CreateBookingRequest) ToModel(actor, customerID string, dailyRentPrice float64) (model.Booking, error) {
	startDate, err := time.Parse(constant.RentDateFormat, r.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := time.Parse(constant.RentDateFormat, r.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	days := math.Ceil(endDate.Sub(startDate).Hours() / 24)

	return model.Booking{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		VehicleID:  r.VehicleID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     constant.BookingStatusActive,
		TotalPrice: days * dailyRentPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	VehicleID  string  `json:"vehicle_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.VehicleID = model.VehicleID
	r.StartDate = model.StartDate.Format(constant.RentDateFormat)
	r.EndDate = model.EndDate.Format(constant.RentDateFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type BookingDetailResponse struct {
	ID                 string  `json:"id"`
	CustomerID         string  `json:"customer_id"`
	VehicleID          string  `json:"vehicle_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Status             string  `json:"status"`
	TotalPrice         float64 `json:"total_price"`
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"`
	VehicleName        string  `json:"vehicle_name"`
	VehicleType        string  `json:"vehicle_type"`
	RegistrationNumber string  `json:"registration_number"`
	gDto.Metadata
}

func (r *BookingDetailResponse) FromModel(model model.BookingDetail) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.VehicleID = model.VehicleID
	r.StartDate = model.StartDate.Format(constant.RentDateFormat)
	r.EndDate = model.EndDate.Format(constant.RentDateFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.VehicleName = model.VehicleName
	r.VehicleType = model.VehicleType
	r.RegistrationNumber = model.RegistrationNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingDetailResponse `json:"bookings"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingDetailResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the message published to the booking events topic.
type BookingEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	VehicleID  string    `json:"vehicle_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}
