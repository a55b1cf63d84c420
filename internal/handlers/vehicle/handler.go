package vehicle

import (
	"net/http"

	"garage/infras/otel"
	"garage/internal/domains/vehicle/model"
	"garage/internal/domains/vehicle/model/dto"
	"garage/internal/domains/vehicle/service"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	"garage/shared/validator"
	"garage/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehicle)
		routerGroup.Get("/", handler.GetVehicles)
		routerGroup.Get("/{vehicleId}", handler.GetVehicleByID)
		routerGroup.Patch("/{vehicleId}", handler.UpdateVehicle)
		routerGroup.Delete("/{vehicleId}", handler.DeleteVehicle)
		routerGroup.Post("/{vehicleId}/image", handler.UploadVehicleImage)
	})
}

// CreateVehicle adds a vehicle to the rental fleet.
// @Summary Create a new vehicle
// @Description Register a vehicle in the fleet. New vehicles start out available. Admin only.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Envelope "Vehicle created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles [post]
// @Security BearerAuth
func (handler *Handler) CreateVehicle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicle created successfully")

	response.WithMessageAndJSON(writer, http.StatusCreated, "Vehicle created successfully", res)
}

// GetVehicles retrieves all vehicles.
// @Summary Get all vehicles
// @Description Retrieve all vehicles with optional filtering and pagination.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by vehicle type"
// @Param availability_status query string false "Filter by availability (available, booked)"
// @Success 200 {object} response.Envelope "List of vehicles"
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles [get]
func (handler *Handler) GetVehicles(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	vehicleType := request.URL.Query().Get(model.FieldType)
	availability := request.URL.Query().Get(model.FieldAvailabilityStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if vehicleType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleType,
			Table:    model.TableName,
		})
	}

	if availability != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailabilityStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    availability,
			Table:    model.TableName,
		})
	}

	vehicles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicles retrieved successfully")

	response.WithJSON(writer, http.StatusOK, vehicles)
}

// GetVehicleByID retrieves a vehicle by its ID.
// @Summary Get a vehicle by ID
// @Description Retrieve a vehicle by its unique identifier.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} response.Envelope "Vehicle details"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles/{vehicleId} [get]
func (handler *Handler) GetVehicleByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamVehicleID)

	vehicle, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicle retrieved successfully")

	response.WithJSON(writer, http.StatusOK, vehicle)
}

// UpdateVehicle updates a vehicle's details.
// @Summary Update a vehicle
// @Description Update vehicle fields. Admin only.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Vehicle Request"
// @Success 200 {object} response.Envelope "Vehicle updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles/{vehicleId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVehicle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamVehicleID)

	req := dto.UpdateVehicleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicle updated successfully")

	response.WithMessage(writer, http.StatusOK, "Vehicle updated successfully")
}

// DeleteVehicle deletes a vehicle from the fleet.
// @Summary Delete a vehicle
// @Description Delete a vehicle by ID. Fails if the vehicle has active bookings. Admin only.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} response.Envelope "Vehicle deleted successfully"
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles/{vehicleId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVehicle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicle")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamVehicleID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete vehicle")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicle deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Vehicle deleted successfully")
}

// UploadVehicleImage uploads a vehicle image and stores its URL.
// @Summary Upload a vehicle image
// @Description Upload an image for a vehicle. Accepts multipart form data. Admin only.
// @Tags Vehicle
// @Accept multipart/form-data
// @Produce json
// @Param vehicleId path string true "Vehicle ID"
// @Param file formData file true "Image file (png, jpg, jpeg; max 5 MB)"
// @Success 200 {object} response.Envelope "Image uploaded successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/vehicles/{vehicleId}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadVehicleImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadVehicleImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamVehicleID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form data"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequestFromString("image file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload vehicle image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Vehicle image uploaded successfully")

	response.WithMessageAndJSON(writer, http.StatusOK, "Image uploaded successfully", res)
}
