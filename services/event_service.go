package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"planvite.app/configs/configslog"
	"planvite.app/models"
	"planvite.app/policy"
	"planvite.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventServiceError is a typed service error usable with errors.Is.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound          EventServiceError = "event not found"
	ErrEventForbidden         EventServiceError = "not authorized for this event"
	ErrEventInvalidInput      EventServiceError = "invalid event input"
	ErrEventTitleRequired     EventServiceError = "event title is required"
	ErrEventDateTimeRequired  EventServiceError = "event date/time is required"
	ErrInvalidRSVPStatus      EventServiceError = "invalid rsvp status"
	ErrCommentMessageRequired EventServiceError = "comment message is required"
)

// EventCreateInput carries the caller-suppliable fields for a new event. The
// organizer is never part of it; it is always the requester.
type EventCreateInput struct {
	Title       string
	Description string
	DateTime    time.Time
	Location    string
	InviteeIDs  []uint
}

// EventUpdateInput carries a partial update. Empty strings, a zero DateTime
// and a nil InviteeIDs slice leave the stored value unchanged; a non-nil
// empty slice clears the invite list.
type EventUpdateInput struct {
	Title       string
	Description string
	DateTime    time.Time
	Location    string
	InviteeIDs  []uint
}

// IEventService is the event aggregate's operation surface.
type IEventService interface {
	CreateEvent(ctx context.Context, organizerID uint, input EventCreateInput) (*models.Event, error)
	GetEventsForUser(ctx context.Context, userID uint) ([]models.Event, error)
	GetEventByID(ctx context.Context, id uint) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uint, requesterID uint, input EventUpdateInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint, requesterID uint) error
	SetRSVP(ctx context.Context, id uint, requesterID uint, status models.RSVPStatus) ([]models.EventRSVP, error)
	AddComment(ctx context.Context, id uint, requesterID uint, message string) ([]models.EventComment, error)
	GetComments(ctx context.Context, id uint, requesterID uint) ([]models.EventComment, error)
}

// EventServiceOptions are the behavior switches read from configuration.
type EventServiceOptions struct {
	// CommentsMembersOnly gates GetComments on event membership. See
	// configs.Config.CommentsMembersOnly.
	CommentsMembersOnly bool
}

// EventService implements IEventService.
type EventService struct {
	repo  repositories.IEventRepository
	users repositories.IUserRepository
	db    *gorm.DB
	opts  EventServiceOptions
}

// NewEventService wires an EventService onto the given DB handle.
func NewEventService(db *gorm.DB, opts EventServiceOptions) IEventService {
	return &EventService{
		repo:  repositories.NewEventRepository(db),
		users: repositories.NewUserRepository(db),
		db:    db,
		opts:  opts,
	}
}

func validateEventCreate(input EventCreateInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEventTitleRequired
	}
	if input.DateTime.IsZero() {
		return ErrEventDateTimeRequired
	}
	return nil
}

// CreateEvent stores a new event organized by organizerID. Unknown invitee
// ids are dropped rather than failing the create.
func (s *EventService) CreateEvent(ctx context.Context, organizerID uint, input EventCreateInput) (*models.Event, error) {
	if organizerID == 0 {
		return nil, ErrEventInvalidInput
	}
	if err := validateEventCreate(input); err != nil {
		return nil, err
	}

	invitees, err := s.users.FindByIDs(ctx, input.InviteeIDs)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DateTime:    input.DateTime,
		Location:    input.Location,
		OrganizerID: organizerID,
		Invitees:    invitees,
		RSVPs:       []models.EventRSVP{},
		Comments:    []models.EventComment{},
	}
	if err := s.repo.Create(ctx, event); err != nil {
		configslog.Log.Error("CreateEvent failed", zap.Uint("organizerID", organizerID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("event created: id=%d title=%q organizer=%d", event.ID, event.Title, organizerID)
	return event, nil
}

// GetEventsForUser lists the events the user organizes or is invited to.
func (s *EventService) GetEventsForUser(ctx context.Context, userID uint) ([]models.Event, error) {
	if userID == 0 {
		return nil, ErrEventInvalidInput
	}
	return s.repo.FindAllForUser(ctx, userID)
}

// GetEventByID fetches one aggregate.
func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// UpdateEvent applies the non-empty fields of input. Only the organizer may
// update; authorization runs before anything is written.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, requesterID uint, input EventUpdateInput) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsOrganizer(event, requesterID) {
		return nil, ErrEventForbidden
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		event.Title = title
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if !input.DateTime.IsZero() {
		event.DateTime = input.DateTime
	}
	if input.Location != "" {
		event.Location = input.Location
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewEventRepository(tx)
		if err := repoTx.Save(ctx, event); err != nil {
			return err
		}
		if input.InviteeIDs != nil {
			invitees, err := repositories.NewUserRepository(tx).FindByIDs(ctx, input.InviteeIDs)
			if err != nil {
				return err
			}
			if err := repoTx.ReplaceInvitees(ctx, event, invitees); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("UpdateEvent transaction failed", zap.Uint("id", id), zap.Uint("requesterID", requesterID), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("event updated: id=%d by user=%d", id, requesterID)
	return s.GetEventByID(ctx, id)
}

// DeleteEvent removes the aggregate entirely. Only the organizer may delete.
func (s *EventService) DeleteEvent(ctx context.Context, id uint, requesterID uint) error {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.IsOrganizer(event, requesterID) {
		return ErrEventForbidden
	}

	if err := s.repo.Delete(ctx, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		configslog.Log.Error("DeleteEvent failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("event deleted: id=%d by user=%d", id, requesterID)
	return nil
}

// SetRSVP records the requester's answer. Invitees only; one row per user —
// a repeated call overwrites the status in place. Returns the full list.
func (s *EventService) SetRSVP(ctx context.Context, id uint, requesterID uint, status models.RSVPStatus) ([]models.EventRSVP, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsInvitee(event, requesterID) {
		return nil, ErrEventForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidRSVPStatus
	}

	rsvp := &models.EventRSVP{EventID: event.ID, UserID: requesterID, Status: status}
	if err := s.repo.UpsertRSVP(ctx, rsvp); err != nil {
		configslog.Log.Error("SetRSVP failed", zap.Uint("id", id), zap.Uint("requesterID", requesterID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("rsvp recorded: event=%d user=%d status=%s", id, requesterID, status)
	return s.repo.FindRSVPs(ctx, event.ID)
}

// AddComment appends a comment by the requester. Organizer and invitees only.
// Returns the full comment list.
func (s *EventService) AddComment(ctx context.Context, id uint, requesterID uint, message string) ([]models.EventComment, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsMember(event, requesterID) {
		return nil, ErrEventForbidden
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrCommentMessageRequired
	}

	comment := &models.EventComment{EventID: event.ID, UserID: requesterID, Message: message}
	if err := s.repo.AppendComment(ctx, comment); err != nil {
		configslog.Log.Error("AddComment failed", zap.Uint("id", id), zap.Uint("requesterID", requesterID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("comment added: event=%d user=%d", id, requesterID)
	return s.repo.FindComments(ctx, event.ID)
}

// GetComments returns the event's comments with authors resolved. By default
// any authenticated requester may read them; the members-only option narrows
// that to organizer and invitees.
func (s *EventService) GetComments(ctx context.Context, id uint, requesterID uint) ([]models.EventComment, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.opts.CommentsMembersOnly && !policy.IsMember(event, requesterID) {
		return nil, ErrEventForbidden
	}
	return s.repo.FindComments(ctx, event.ID)
}

var _ IEventService = (*EventService)(nil)
