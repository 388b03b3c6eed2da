package domain

import (
	"encoding/base64"
	"time"
)

type ScanResult string

const (
	ScanApproved ScanResult = "APPROVED"
	ScanRejected ScanResult = "REJECTED"
)

// RejectReason is the closed taxonomy of validation rejections. These are
// outcomes, not errors: a rejected scan is a fully handled decision.
type RejectReason string

const (
	ReasonRateLimit    RejectReason = "RATE_LIMIT"
	ReasonOffline      RejectReason = "OFFLINE"
	ReasonNotFound     RejectReason = "NOT_FOUND"
	ReasonWrongEvent   RejectReason = "WRONG_EVENT"
	ReasonBlocked      RejectReason = "BLOCKED"
	ReasonUsed         RejectReason = "USED"
	ReasonNetworkError RejectReason = "NETWORK_ERROR"
)

// SessionContext is the scanning device's operational context, read-only per
// validation call.
type SessionContext struct {
	DeviceID        string
	StaffUserID     string
	SelectedEventID string
	OperationType   OperationType
	Mode            string
	Gate            string
}

// Outcome is the engine's decision for one scanned payload. Reason and
// Details are set only on rejection; Ticket only on approval.
type Outcome struct {
	Result  ScanResult   `json:"result"`
	Reason  RejectReason `json:"reason,omitempty"`
	Details string       `json:"details,omitempty"`
	Ticket  *Ticket      `json:"ticket,omitempty"`
}

func Approved(t *Ticket) Outcome {
	return Outcome{Result: ScanApproved, Ticket: t}
}

func Rejected(reason RejectReason) Outcome {
	return Outcome{Result: ScanRejected, Reason: reason}
}

func RejectedWithDetails(reason RejectReason, details string) Outcome {
	return Outcome{Result: ScanRejected, Reason: reason, Details: details}
}

// ScanAttempt is the immutable audit record of one validation decision.
type ScanAttempt struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	DeviceID      string        `json:"device_id"`
	StaffUserID   string        `json:"staff_user_id"`
	CodeHash      string        `json:"code_hash"`
	Result        ScanResult    `json:"result"`
	Reason        RejectReason  `json:"reason,omitempty"`
	OperationType OperationType `json:"operation_type"`
	Mode          string        `json:"mode"`
	Gate          string        `json:"gate"`
	EventID       string        `json:"event_id"`
}

// HashCode obfuscates a ticket code for display in scan history. Not
// cryptographic, only keeps the raw code off operator screens.
func HashCode(code string) string {
	return base64.StdEncoding.EncodeToString([]byte(code))
}
