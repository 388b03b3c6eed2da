package domain

import "time"

type OperationType string

const (
	OperationBoliche      OperationType = "BOLICHE"
	OperationEvento       OperationType = "EVENTO"
	OperationEventoGrande OperationType = "EVENTO_GRANDE"
	OperationCine         OperationType = "CINE"
)

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "UPCOMING"
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusFinished EventStatus = "FINISHED"
)

// EventSession is one operational window: a party night, a film screening.
// Tickets are only redeemable against the session their event_id points at.
type EventSession struct {
	ID            string        `json:"id"`
	OperationType OperationType `json:"operation_type"`
	Name          string        `json:"name"`
	Venue         string        `json:"venue"`
	StartsAt      time.Time     `json:"starts_at"`
	EndsAt        time.Time     `json:"ends_at"`
	Status        EventStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type CreateEventInput struct {
	OperationType OperationType
	Name          string
	Venue         string
	StartsAt      time.Time
	EndsAt        time.Time
}

// ModesFor returns the redemption channels legal for an operation profile.
func ModesFor(op OperationType) []string {
	switch op {
	case OperationCine:
		return []string{"ENTRY", "SEAT", "POPCORN"}
	case OperationEvento:
		return []string{"ENTRY", "VIP"}
	case OperationBoliche, OperationEventoGrande:
		return []string{"ENTRY", "VIP", "DRINK"}
	default:
		return []string{"ENTRY"}
	}
}

func ParseOperationType(s string) (OperationType, bool) {
	switch OperationType(s) {
	case OperationBoliche, OperationEvento, OperationEventoGrande, OperationCine:
		return OperationType(s), true
	}
	return "", false
}
