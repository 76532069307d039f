// Package policy holds the authorization predicates gating event mutations.
// They are pure functions over an already-loaded aggregate and must be
// re-evaluated on every request; invitee lists change between calls.
package policy

import "planvite.app/models"

// IsOrganizer reports whether userID created the event. Organizers hold the
// sole edit/delete rights.
func IsOrganizer(event *models.Event, userID uint) bool {
	if event == nil || userID == 0 {
		return false
	}
	return event.OrganizerID == userID
}

// IsInvitee reports whether userID is on the event's invite list.
func IsInvitee(event *models.Event, userID uint) bool {
	if event == nil || userID == 0 {
		return false
	}
	for _, invitee := range event.Invitees {
		if invitee.ID == userID {
			return true
		}
	}
	return false
}

// IsMember reports whether userID is the organizer or an invitee; members may
// comment on the event.
func IsMember(event *models.Event, userID uint) bool {
	return IsOrganizer(event, userID) || IsInvitee(event, userID)
}
