package service

import (
	"context"
	"fmt"

	"garage/config"
	"garage/infras/kafka"
	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/model/dto"
	"garage/internal/domains/booking/repository"
	vehicleModel "garage/internal/domains/vehicle/model"
	vehicleRepo "garage/internal/domains/vehicle/repository"
	"garage/shared"
	"garage/shared/cache"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	"garage/shared/principal"
	"garage/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheGetVehicle    = "vehicle:get"
	cacheGetAllVehicle = "vehicle:gets"

	eventBookingCreated       = "booking.created"
	eventBookingStatusChanged = "booking.status_changed"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	vehicleRepo vehicleRepo.Vehicle
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(
	repo repository.Booking,
	vehicleRepo vehicleRepo.Vehicle,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	p, _ := principal.FromContext(ctx)

	// Only admins can book on behalf of another customer.
	customerID := p.UserID
	if p.IsAdmin() && req.CustomerID != constant.Empty {
		customerID = req.CustomerID
	}

	vehicleFilter := shared.FilterByID(req.VehicleID, vehicleModel.FieldID, vehicleModel.TableName)

	vehicle, err := s.vehicleRepo.Get(ctx, vehicleFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound("Vehicle not found")
	}

	if vehicle.AvailabilityStatus != constant.VehicleStatusAvailable {
		return res, failure.Conflict("Vehicle is not available")
	}

	booking, err := req.ToModel(p.UserID, customerID, vehicle.DailyRentPrice)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString("Invalid date format, expected YYYY-MM-DD")
	}

	if !booking.EndDate.After(booking.StartDate) {
		return res, failure.BadRequestFromString("End date must be after start date")
	}

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		statusUpdate := map[string]any{
			vehicleModel.FieldAvailabilityStatus: constant.VehicleStatusBooked,
			constant.FieldModifiedAt:             timezone.Now(),
			constant.FieldModifiedBy:             p.UserID,
		}

		if err := s.vehicleRepo.UpdateTx(ctx, tx, statusUpdate, vehicleFilter); err != nil {
			return fmt.Errorf("failed to mark vehicle as booked: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID, booking.VehicleID)
		s.publishEvent(c, eventBookingCreated, booking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	p, _ := principal.FromContext(ctx)

	booking, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found")
	}

	if !p.IsAdmin() && booking.CustomerID != p.UserID {
		return res, failure.Forbidden("Forbidden: Insufficient permissions")
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != constant.BookingStatusCancelled && req.Status != constant.BookingStatusReturned {
		return failure.BadRequestFromString("Invalid status update")
	}

	p, _ := principal.FromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("Booking not found")
	}

	if !p.IsAdmin() && booking.CustomerID != p.UserID {
		return failure.Forbidden("Forbidden: Insufficient permissions")
	}

	if booking.Status != constant.BookingStatusActive {
		return failure.Conflict("Booking is not active")
	}

	if req.Status == constant.BookingStatusCancelled && timezone.Now().After(booking.StartDate) {
		return failure.Conflict("Cannot cancel booking after start date")
	}

	vehicleFilter := shared.FilterByID(booking.VehicleID, vehicleModel.FieldID, vehicleModel.TableName)

	err = s.transactor.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		statusUpdate := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: p.UserID,
		}

		if err := s.repo.UpdateTx(ctx, tx, statusUpdate, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		// Both terminal states free up the vehicle.
		vehicleUpdate := map[string]any{
			vehicleModel.FieldAvailabilityStatus: constant.VehicleStatusAvailable,
			constant.FieldModifiedAt:             timezone.Now(),
			constant.FieldModifiedBy:             p.UserID,
		}

		if err := s.vehicleRepo.UpdateTx(ctx, tx, vehicleUpdate, vehicleFilter); err != nil {
			return fmt.Errorf("failed to release vehicle: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID, booking.VehicleID)
		s.publishEvent(c, eventBookingStatusChanged, booking)
	}()

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, bookingID, vehicleID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetVehicle, vehicleID)); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllVehicle)
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		VehicleID:  booking.VehicleID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Now(),
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("eventType", eventType).Msg("failed to publish booking event")
	}
}
