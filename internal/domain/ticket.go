package domain

import (
	"strings"
	"time"
)

type TicketType string

const (
	TicketTypeEntry   TicketType = "ENTRY"
	TicketTypeVIP     TicketType = "VIP"
	TicketTypeDrink   TicketType = "DRINK"
	TicketTypeSeat    TicketType = "SEAT"
	TicketTypePopcorn TicketType = "POPCORN"
	TicketTypeOther   TicketType = "OTHER"
)

type TicketStatus string

const (
	TicketStatusValid   TicketStatus = "VALID"
	TicketStatusUsed    TicketStatus = "USED"
	TicketStatusBlocked TicketStatus = "BLOCKED"
)

// Ticket is one redeemable right. USED is terminal; BLOCKED is an
// administrative hold that can be lifted back to VALID. The used_* fields are
// written exactly once, together with the transition to USED.
type Ticket struct {
	ID             string       `json:"id"`
	EventID        string       `json:"event_id"`
	OwnerUserID    string       `json:"owner_user_id"`
	Code           string       `json:"code"`
	Type           TicketType   `json:"type"`
	Status         TicketStatus `json:"status"`
	UsedAt         *time.Time   `json:"used_at,omitempty"`
	UsedInMode     string       `json:"used_in_mode,omitempty"`
	UsedByDeviceID string       `json:"used_by_device_id,omitempty"`
	MetadataDetail string       `json:"metadata_detail,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type CreateTicketInput struct {
	EventID        string
	OwnerUserID    string
	Code           string
	Type           TicketType
	MetadataDetail string
}

// RedeemInput carries the set-once fields written with the VALID -> USED
// transition.
type RedeemInput struct {
	At       time.Time
	Mode     string
	DeviceID string
}

// InitialData is the bulk snapshot consumed once at login to seed a device's
// local state.
type InitialData struct {
	Events  []*EventSession `json:"events"`
	Tickets []*Ticket       `json:"tickets"`
}

// codePrefix is the optional scheme a QR payload may carry in front of the
// ticket code.
const codePrefix = "ticket:"

// NormalizeCode strips the optional "ticket:" prefix from a scanned payload.
// Anything without the prefix is taken as the code itself.
func NormalizeCode(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), codePrefix)
}

func ParseTicketType(s string) (TicketType, bool) {
	switch TicketType(s) {
	case TicketTypeEntry, TicketTypeVIP, TicketTypeDrink,
		TicketTypeSeat, TicketTypePopcorn, TicketTypeOther:
		return TicketType(s), true
	}
	return "", false
}

func ParseTicketStatus(s string) (TicketStatus, bool) {
	switch TicketStatus(s) {
	case TicketStatusValid, TicketStatusUsed, TicketStatusBlocked:
		return TicketStatus(s), true
	}
	return "", false
}
