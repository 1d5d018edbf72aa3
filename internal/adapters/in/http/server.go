// Package http exposes the shipment lifecycle over a REST surface.
// It translates requests into commands and queries, and maps application
// errors onto HTTP status codes. Actor identity arrives in the X-Seller-ID
// and X-Partner-ID headers; authenticating those identities is the job of
// an upstream gateway, not of this adapter.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the acting identity.
const (
	HeaderSellerID  = "X-Seller-ID"
	HeaderPartnerID = "X-Partner-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler    commands.CreateShipmentCommandHandler
	updateShipmentHandler    commands.UpdateShipmentCommandHandler
	cancelShipmentHandler    commands.CancelShipmentCommandHandler
	deleteShipmentHandler    commands.DeleteShipmentCommandHandler
	addShipmentTagHandler    commands.AddShipmentTagCommandHandler
	removeShipmentTagHandler commands.RemoveShipmentTagCommandHandler
	submitReviewHandler      commands.SubmitReviewCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	addShipmentTagHandler commands.AddShipmentTagCommandHandler,
	removeShipmentTagHandler commands.RemoveShipmentTagCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		updateShipmentHandler:    updateShipmentHandler,
		cancelShipmentHandler:    cancelShipmentHandler,
		deleteShipmentHandler:    deleteShipmentHandler,
		addShipmentTagHandler:    addShipmentTagHandler,
		removeShipmentTagHandler: removeShipmentTagHandler,
		submitReviewHandler:      submitReviewHandler,
		createPartnerHandler:     createPartnerHandler,
		getShipmentHandler:       getShipmentHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.PATCH("/shipments/:id", s.UpdateShipment)
	v1.POST("/shipments/:id/cancel", s.CancelShipment)
	v1.DELETE("/shipments/:id", s.DeleteShipment)
	v1.POST("/shipments/:id/tags/:tag", s.AddShipmentTag)
	v1.DELETE("/shipments/:id/tags/:tag", s.RemoveShipmentTag)
	v1.POST("/shipments/review", s.SubmitReview)
	v1.POST("/partners", s.CreatePartner)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateShipment handles POST /api/v1/shipments - places a new shipment and
// assigns it to a delivery partner servicing the destination.
func (s *Server) CreateShipment(ctx echo.Context) error {
	sellerID, err := headerUUID(ctx, HeaderSellerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req NewShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewZipCode(req.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		req.Content,
		req.Weight,
		destination,
		sellerID,
		req.ContactEmail,
		req.ContactPhone,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, ShipmentCreatedResponse{ID: shipmentID.String()})
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one shipment with
// its full timeline and tags.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := paramUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+err.Error())
	}

	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromView(view))
}

// UpdateShipment handles PATCH /api/v1/shipments/:id - records a progress
// report from the assigned partner. An empty body is rejected before it
// reaches the command layer.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := paramUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	partnerID, err := headerUUID(ctx, HeaderPartnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var location *kernel.ZipCode
	if req.Location != nil {
		zip, zipErr := kernel.NewZipCode(*req.Location)
		if zipErr != nil {
			return badRequest(ctx, "Invalid location: "+zipErr.Error())
		}
		location = &zip
	}

	var status *shipment.Status
	if req.Status != nil {
		parsed, statusErr := shipment.StatusFromString(*req.Status)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID,
		partnerID,
		location,
		status,
		req.Description,
		req.VerificationCode,
		req.EstimatedDelivery,
	)
	if err != nil {
		return badRequest(ctx, "Invalid update data: "+err.Error())
	}

	if handleErr := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel - cancels a
// shipment on behalf of the seller who placed it.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, err := paramUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	sellerID, err := headerUUID(ctx, HeaderSellerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, sellerID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - removes a shipment
// record together with its timeline, tags and reviews.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := paramUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+err.Error())
	}

	if handleErr := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddShipmentTag handles POST /api/v1/shipments/:id/tags/:tag - attaches a
// handling tag. Attaching a tag that is already present succeeds.
func (s *Server) AddShipmentTag(ctx echo.Context) error {
	shipmentID, tag, err := shipmentTagParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddShipmentTagCommand(shipmentID, tag)
	if err != nil {
		return badRequest(ctx, "Invalid tag data: "+err.Error())
	}

	if handleErr := s.addShipmentTagHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveShipmentTag handles DELETE /api/v1/shipments/:id/tags/:tag - detaches
// a handling tag. Removing an absent tag fails with 404.
func (s *Server) RemoveShipmentTag(ctx echo.Context) error {
	shipmentID, tag, err := shipmentTagParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveShipmentTagCommand(shipmentID, tag)
	if err != nil {
		return badRequest(ctx, "Invalid tag data: "+err.Error())
	}

	if handleErr := s.removeShipmentTagHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitReview handles POST /api/v1/shipments/review - attaches a customer
// review to the shipment referenced by a signed review token.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitReviewCommand(req.Token, req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreatePartner handles POST /api/v1/partners - registers a delivery partner
// with its handling capacity and serviceable zip codes.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req NewPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zips := make([]kernel.ZipCode, 0, len(req.ServiceableZips))
	for _, raw := range req.ServiceableZips {
		zip, zipErr := kernel.NewZipCode(raw)
		if zipErr != nil {
			return badRequest(ctx, "Invalid serviceable zip: "+zipErr.Error())
		}
		zips = append(zips, zip)
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID, req.Name, req.Email, req.MaxCapacity, zips)
	if err != nil {
		return badRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if handleErr := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PartnerCreatedResponse{ID: partnerID.String()})
}

// mapCommandError translates application errors into HTTP responses.
func (s *Server) mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrShipmentAlreadyDelivered),
		errors.Is(err, services.ErrPartnerUnavailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrInvalidToken):
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, shipment.ErrNoPriorEvent):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func headerUUID(ctx echo.Context, header string) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(header)
	if raw == "" {
		return kernel.UUID{}, errors.New(header + " header is required")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New(header + " header is not a valid UUID")
	}
	return id, nil
}

func paramUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errors.New(name + " is not a valid UUID")
	}
	return id, nil
}

func shipmentTagParams(ctx echo.Context) (kernel.UUID, shipment.Tag, error) {
	shipmentID, err := paramUUID(ctx, "id")
	if err != nil {
		return kernel.UUID{}, shipment.TagUnknown, err
	}
	tag, err := shipment.TagFromString(ctx.Param("tag"))
	if err != nil {
		return kernel.UUID{}, shipment.TagUnknown, err
	}
	return shipmentID, tag, nil
}

func shipmentResponseFromView(view queries.GetShipmentQueryResponse) ShipmentResponse {
	timeline := make([]TimelineEvent, len(view.Timeline))
	for i, event := range view.Timeline {
		timeline[i] = TimelineEvent{
			Location:    event.Location,
			Status:      event.Status,
			Description: event.Description,
			CreatedAt:   event.CreatedAt,
		}
	}

	tags := make([]ShipmentTag, len(view.Tags))
	for i, tag := range view.Tags {
		tags[i] = ShipmentTag{Name: tag.Name, Instruction: tag.Instruction}
	}

	var partnerID *string
	if view.PartnerID != nil {
		id := view.PartnerID.String()
		partnerID = &id
	}

	return ShipmentResponse{
		ID:                view.ID.String(),
		Content:           view.Content,
		Weight:            view.Weight,
		Destination:       view.Destination,
		Status:            view.Status,
		EstimatedDelivery: view.EstimatedDelivery,
		SellerID:          view.SellerID.String(),
		PartnerID:         partnerID,
		PartnerName:       view.PartnerName,
		ContactEmail:      view.ContactEmail,
		ContactPhone:      view.ContactPhone,
		Timeline:          timeline,
		Tags:              tags,
	}
}
