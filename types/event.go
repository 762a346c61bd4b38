package types

import "time"

// Event types published to the registration-event channel.
const (
	EventRegistrationSubmitted     = "registration.submitted"
	EventRegistrationStatusChanged = "registration.status_changed"
	EventRegistrationDeleted       = "registration.deleted"
)

// RegistrationEvent is the envelope published whenever a registration is
// submitted, moderated, or deleted. Delivery is best-effort; consumers must
// tolerate duplicates.
type RegistrationEvent struct {
	// ID uniquely identifies this event occurrence.
	ID string `json:"id"`

	// Type is one of the EventRegistration* constants.
	Type string `json:"type"`

	// Registration is a snapshot of the record after the action, or the
	// last state before deletion for EventRegistrationDeleted.
	Registration Registration `json:"registration"`

	// PreviousStatus is set for status-change events.
	PreviousStatus Status `json:"previousStatus,omitempty"`

	// OccurredAt is the server time the action completed.
	OccurredAt time.Time `json:"occurredAt"`
}
