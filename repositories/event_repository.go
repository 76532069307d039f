package repositories

import (
	"context"
	"errors"

	"planvite.app/configs/configslog"
	"planvite.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IEventRepository is the persistence surface for the event aggregate. Every
// read returns the aggregate whole (invitees, RSVPs, comments) so the service
// layer can run its checks against current state.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAllForUser(ctx context.Context, userID uint) ([]models.Event, error)
	Save(ctx context.Context, event *models.Event) error
	ReplaceInvitees(ctx context.Context, event *models.Event, invitees []models.User) error
	Delete(ctx context.Context, event *models.Event) error
	UpsertRSVP(ctx context.Context, rsvp *models.EventRSVP) error
	FindRSVPs(ctx context.Context, eventID uint) ([]models.EventRSVP, error)
	AppendComment(ctx context.Context, comment *models.EventComment) error
	FindComments(ctx context.Context, eventID uint) ([]models.EventComment, error)
}

// EventRepository implements IEventRepository on GORM.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a repository bound to the given DB handle. The
// handle may be a transaction.
func NewEventRepository(db *gorm.DB) IEventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create stores a new event together with its invitee links.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil || event.OrganizerID == 0 {
		return errors.New("cannot create event without an organizer")
	}
	return r.getDB(ctx).Create(event).Error
}

// FindByID loads the full aggregate or reports ErrNotFound.
func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, errors.New("invalid event id")
	}
	var event models.Event
	err := r.getDB(ctx).
		Preload("Organizer").
		Preload("Invitees").
		Preload("RSVPs", func(db *gorm.DB) *gorm.DB { return db.Order("event_rsvps.created_at asc") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("event_comments.created_at asc") }).
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

// FindAllForUser returns the events the user organizes or is invited to, with
// organizer and invitees resolved for display.
func (r *EventRepository) FindAllForUser(ctx context.Context, userID uint) ([]models.Event, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	events := []models.Event{}
	err := r.getDB(ctx).
		Distinct("events.*").
		Joins("LEFT JOIN event_invitees ON event_invitees.event_id = events.id").
		Where("events.organizer_id = ? OR event_invitees.user_id = ?", userID, userID).
		Preload("Organizer").
		Preload("Invitees").
		Preload("RSVPs", func(db *gorm.DB) *gorm.DB { return db.Order("event_rsvps.created_at asc") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("event_comments.created_at asc") }).
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAllForUser: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return events, nil
}

// Save persists the event's own columns; associations are written through
// their dedicated methods.
func (r *EventRepository) Save(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("cannot save an unsaved event")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(event).Error
}

// ReplaceInvitees swaps the invite list for the given users.
func (r *EventRepository) ReplaceInvitees(ctx context.Context, event *models.Event, invitees []models.User) error {
	if event == nil || event.ID == 0 {
		return errors.New("cannot update invitees of an unsaved event")
	}
	return r.getDB(ctx).Model(event).Association("Invitees").Replace(&invitees)
}

// Delete removes the event and its owned records in one shot.
func (r *EventRepository) Delete(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("cannot delete an unsaved event")
	}
	result := r.getDB(ctx).Select("Invitees", "RSVPs", "Comments").Delete(event)
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Delete: DB error", zap.Uint("id", event.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertRSVP updates the row for (event, user) when it exists and inserts it
// otherwise, keeping the one-answer-per-user invariant.
func (r *EventRepository) UpsertRSVP(ctx context.Context, rsvp *models.EventRSVP) error {
	if rsvp == nil || rsvp.EventID == 0 || rsvp.UserID == 0 {
		return errors.New("invalid rsvp data")
	}
	return r.getDB(ctx).
		Where(models.EventRSVP{EventID: rsvp.EventID, UserID: rsvp.UserID}).
		Assign(models.EventRSVP{Status: rsvp.Status}).
		FirstOrCreate(rsvp).Error
}

// FindRSVPs returns the event's answers in insertion order.
func (r *EventRepository) FindRSVPs(ctx context.Context, eventID uint) ([]models.EventRSVP, error) {
	if eventID == 0 {
		return nil, errors.New("invalid event id")
	}
	rsvps := []models.EventRSVP{}
	err := r.getDB(ctx).Where("event_id = ?", eventID).Order("created_at asc").Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindRSVPs: DB error", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// AppendComment inserts a new comment; comments are never updated afterwards.
func (r *EventRepository) AppendComment(ctx context.Context, comment *models.EventComment) error {
	if comment == nil || comment.EventID == 0 || comment.UserID == 0 {
		return errors.New("invalid comment data")
	}
	return r.getDB(ctx).Omit("User").Create(comment).Error
}

// FindComments returns the event's comments in insertion order with the
// author resolved.
func (r *EventRepository) FindComments(ctx context.Context, eventID uint) ([]models.EventComment, error) {
	if eventID == 0 {
		return nil, errors.New("invalid event id")
	}
	comments := []models.EventComment{}
	err := r.getDB(ctx).Where("event_id = ?", eventID).Preload("User").Order("created_at asc").Find(&comments).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindComments: DB error", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

var _ IEventRepository = (*EventRepository)(nil)
