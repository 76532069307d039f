package models

import "time"

// RSVPStatus is an invitee's answer to an invitation.
type RSVPStatus string

const (
	RSVPStatusAccepted RSVPStatus = "accepted"
	RSVPStatusDeclined RSVPStatus = "declined"
	RSVPStatusMaybe    RSVPStatus = "maybe"
)

// Valid reports whether s is one of the three accepted literals.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusAccepted, RSVPStatusDeclined, RSVPStatusMaybe:
		return true
	}
	return false
}

// Event is the aggregate root. Invitees, RSVPs and comments have no lifecycle
// of their own: they are mutated through the event and removed with it.
type Event struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	DateTime    time.Time `gorm:"index;type:timestamptz;not null" json:"dateTime"`
	Location    string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	OrganizerID uint      `gorm:"index;not null" json:"organizerId"`

	Organizer *User          `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"organizer,omitempty"`
	Invitees  []User         `gorm:"many2many:event_invitees;constraint:OnDelete:CASCADE;" json:"invitees"`
	RSVPs     []EventRSVP    `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rsvps"`
	Comments  []EventComment `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
}

// EventRSVP holds one answer per (event, user); the unique index backs the
// find-or-append upsert in the repository.
type EventRSVP struct {
	BaseModel
	EventID uint       `gorm:"not null;index:idx_rsvp_event_user,unique" json:"-"`
	UserID  uint       `gorm:"not null;index:idx_rsvp_event_user,unique" json:"userId"`
	Status  RSVPStatus `gorm:"type:varchar(20);not null;default:'maybe'" json:"status"`
}

// EventComment is append-only; there is no edit or delete path.
type EventComment struct {
	BaseModel
	EventID uint   `gorm:"not null;index" json:"-"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	User    *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`
	Message string `gorm:"type:text;not null" json:"message"`
}
