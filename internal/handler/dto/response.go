package dto

import (
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/audit"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

type EventResponse struct {
	ID            string   `json:"id"`
	OperationType string   `json:"operation_type"`
	Name          string   `json:"name"`
	Venue         string   `json:"venue,omitempty"`
	StartsAt      string   `json:"starts_at"`
	EndsAt        string   `json:"ends_at"`
	Status        string   `json:"status"`
	Modes         []string `json:"modes"`
	CreatedAt     string   `json:"created_at"`
}

type TicketResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	OwnerUserID    string `json:"owner_user_id"`
	Code           string `json:"code"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	UsedAt         string `json:"used_at,omitempty"`
	UsedInMode     string `json:"used_in_mode,omitempty"`
	UsedByDeviceID string `json:"used_by_device_id,omitempty"`
	MetadataDetail string `json:"metadata_detail,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type UserResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email,omitempty"`
	Role        string              `json:"role"`
	IsActive    bool                `json:"is_active"`
	Permissions *domain.Permissions `json:"permissions,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

type OutcomeResponse struct {
	Result  string          `json:"result"`
	Reason  string          `json:"reason,omitempty"`
	Details string          `json:"details,omitempty"`
	Ticket  *TicketResponse `json:"ticket,omitempty"`
}

type ScanAttemptResponse struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	DeviceID      string `json:"device_id"`
	StaffUserID   string `json:"staff_user_id,omitempty"`
	CodeHash      string `json:"code_hash"`
	Result        string `json:"result"`
	Reason        string `json:"reason,omitempty"`
	OperationType string `json:"operation_type,omitempty"`
	Mode          string `json:"mode"`
	Gate          string `json:"gate,omitempty"`
	EventID       string `json:"event_id"`
}

type ReportResponse struct {
	Total    int            `json:"total"`
	Approved int            `json:"approved"`
	Rejected int            `json:"rejected"`
	ByReason map[string]int `json:"by_reason"`
}

type InitialDataResponse struct {
	Events  []EventResponse  `json:"events"`
	Tickets []TicketResponse `json:"tickets"`
	// SyncIntervalSeconds tells the device how often to poll /api/sync.
	SyncIntervalSeconds int `json:"sync_interval_seconds"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.EventSession) EventResponse {
	return EventResponse{
		ID:            e.ID,
		OperationType: string(e.OperationType),
		Name:          e.Name,
		Venue:         e.Venue,
		StartsAt:      e.StartsAt.Format(time.RFC3339),
		EndsAt:        e.EndsAt.Format(time.RFC3339),
		Status:        string(e.Status),
		Modes:         domain.ModesFor(e.OperationType),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:             t.ID,
		EventID:        t.EventID,
		OwnerUserID:    t.OwnerUserID,
		Code:           t.Code,
		Type:           string(t.Type),
		Status:         string(t.Status),
		UsedInMode:     t.UsedInMode,
		UsedByDeviceID: t.UsedByDeviceID,
		MetadataDetail: t.MetadataDetail,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.UsedAt != nil {
		resp.UsedAt = t.UsedAt.Format(time.RFC3339)
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToOutcomeResponse(o domain.Outcome) OutcomeResponse {
	resp := OutcomeResponse{
		Result:  string(o.Result),
		Reason:  string(o.Reason),
		Details: o.Details,
	}
	if o.Ticket != nil {
		t := ToTicketResponse(o.Ticket)
		resp.Ticket = &t
	}
	return resp
}

func ToScanAttemptResponse(a domain.ScanAttempt) ScanAttemptResponse {
	return ScanAttemptResponse{
		ID:            a.ID,
		Timestamp:     a.Timestamp.Format(time.RFC3339),
		DeviceID:      a.DeviceID,
		StaffUserID:   a.StaffUserID,
		CodeHash:      a.CodeHash,
		Result:        string(a.Result),
		Reason:        string(a.Reason),
		OperationType: string(a.OperationType),
		Mode:          a.Mode,
		Gate:          a.Gate,
		EventID:       a.EventID,
	}
}

func ToReportResponse(r audit.Report) ReportResponse {
	byReason := make(map[string]int, len(r.ByReason))
	for reason, n := range r.ByReason {
		byReason[string(reason)] = n
	}
	return ReportResponse{
		Total:    r.Total,
		Approved: r.Approved,
		Rejected: r.Rejected,
		ByReason: byReason,
	}
}

func ToInitialDataResponse(d *domain.InitialData) InitialDataResponse {
	events := make([]EventResponse, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, ToEventResponse(e))
	}

	tickets := make([]TicketResponse, 0, len(d.Tickets))
	for _, t := range d.Tickets {
		tickets = append(tickets, ToTicketResponse(t))
	}

	return InitialDataResponse{Events: events, Tickets: tickets}
}
