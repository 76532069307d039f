package handlers

import (
	"errors"
	"time"

	"planvite.app/configs/configslog"
	"planvite.app/middlewares"
	"planvite.app/models"
	"planvite.app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler exposes the event aggregate over HTTP. The requester id always
// comes from the auth middleware, never from the payload.
type EventHandler struct {
	service  services.IEventService
	validate *validator.Validate
}

// NewEventHandler builds an EventHandler around the given service.
func NewEventHandler(service services.IEventService) *EventHandler {
	return &EventHandler{service: service, validate: validator.New()}
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime" validate:"required"`
	Location    string    `json:"location"`
	Invitees    []uint    `json:"invitees"`
}

// UpdateEventRequest mirrors CreateEventRequest with every field optional;
// omitted fields keep their stored values.
type UpdateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Location    string    `json:"location"`
	Invitees    []uint    `json:"invitees"`
}

type RSVPRequest struct {
	Status string `json:"status"`
}

type CommentRequest struct {
	Message string `json:"message"`
}

// CreateEvent handles POST /api/events.
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	event, err := h.service.CreateEvent(c.UserContext(), userID, services.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		DateTime:    req.DateTime,
		Location:    req.Location,
		InviteeIDs:  req.Invitees,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// ListEvents handles GET /api/events.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	events, err := h.service.GetEventsForUser(c.UserContext(), userID)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(events)
}

// UpdateEvent handles PUT /api/events/:id.
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return h.errorResponse(c, services.ErrEventNotFound)
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event, err := h.service.UpdateEvent(c.UserContext(), eventID, userID, services.EventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DateTime:    req.DateTime,
		Location:    req.Location,
		InviteeIDs:  req.Invitees,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(event)
}

// DeleteEvent handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return h.errorResponse(c, services.ErrEventNotFound)
	}

	if err := h.service.DeleteEvent(c.UserContext(), eventID, userID); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}

// SetRSVP handles PUT /api/events/:id/rsvp.
func (h *EventHandler) SetRSVP(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return h.errorResponse(c, services.ErrEventNotFound)
	}

	var req RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rsvps, err := h.service.SetRSVP(c.UserContext(), eventID, userID, models.RSVPStatus(req.Status))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "RSVP updated successfully", "rsvps": rsvps})
}

// AddComment handles POST /api/events/:id/comments.
func (h *EventHandler) AddComment(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return h.errorResponse(c, services.ErrEventNotFound)
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	comments, err := h.service.AddComment(c.UserContext(), eventID, userID, req.Message)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Comment added", "comments": comments})
}

// ListComments handles GET /api/events/:id/comments.
func (h *EventHandler) ListComments(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return h.errorResponse(c, services.ErrEventNotFound)
	}

	comments, err := h.service.GetComments(c.UserContext(), eventID, userID)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(comments)
}

func eventIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid event id")
	}
	return uint(id), nil
}

// errorResponse maps service errors onto HTTP statuses. Unknown errors leave
// the process as an opaque 500.
func (h *EventHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	case errors.Is(err, services.ErrEventForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrEventTitleRequired),
		errors.Is(err, services.ErrEventDateTimeRequired),
		errors.Is(err, services.ErrInvalidRSVPStatus),
		errors.Is(err, services.ErrCommentMessageRequired),
		errors.Is(err, services.ErrEventInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("event handler error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
	}
}
