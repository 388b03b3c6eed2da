package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lucasromanh/TiketeraValidator/internal/audit"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ValidationSvc interface {
	Validate(ctx context.Context, rawPayload string, sctx domain.SessionContext) domain.Outcome
	Attempts(deviceID string) []domain.ScanAttempt
	Report(deviceID string) audit.Report
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.EventSession, error)
	GetByID(ctx context.Context, id string) (*domain.EventSession, error)
	List(ctx context.Context) ([]*domain.EventSession, error)
}

type TicketSvc interface {
	Create(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error)
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
	Sync(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error)
	InitialData(ctx context.Context, userID string) (*domain.InitialData, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	LoginPIN(ctx context.Context, pin string) (*domain.User, error)
	LoginAssistant(ctx context.Context, name, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	validationService ValidationSvc
	eventService      EventSvc
	ticketService     TicketSvc
	userService       UserSvc
	syncInterval      time.Duration

	// One validate in flight per device. A second request for the same
	// device while one is outstanding is refused, not queued: the scanner
	// retries, it never stacks.
	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

func NewHandler(
	validationService ValidationSvc,
	eventService EventSvc,
	ticketService TicketSvc,
	userService UserSvc,
	syncInterval time.Duration,
) *Handler {
	return &Handler{
		validationService: validationService,
		eventService:      eventService,
		ticketService:     ticketService,
		userService:       userService,
		syncInterval:      syncInterval,
		inflight:          make(map[string]struct{}),
	}
}

// Validation

func (h *Handler) Validate(c *ginext.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.acquire(req.DeviceID) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrScanInFlight.Error()})
		return
	}
	defer h.release(req.DeviceID)

	opType, _ := domain.ParseOperationType(req.OperationType)

	outcome := h.validationService.Validate(c.Request.Context(), req.Code, domain.SessionContext{
		DeviceID:        req.DeviceID,
		StaffUserID:     req.StaffUserID,
		SelectedEventID: req.EventID,
		OperationType:   opType,
		Mode:            req.Mode,
		Gate:            req.Gate,
	})

	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) ListScans(c *ginext.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "device_id is required"})
		return
	}

	attempts := h.validationService.Attempts(deviceID)

	resp := make([]dto.ScanAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, dto.ToScanAttemptResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ScanReport(c *ginext.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "device_id is required"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(h.validationService.Report(deviceID)))
}

func (h *Handler) acquire(deviceID string) bool {
	h.inflightMu.Lock()
	defer h.inflightMu.Unlock()

	if _, busy := h.inflight[deviceID]; busy {
		return false
	}
	h.inflight[deviceID] = struct{}{}
	return true
}

func (h *Handler) release(deviceID string) {
	h.inflightMu.Lock()
	delete(h.inflight, deviceID)
	h.inflightMu.Unlock()
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.LoginPIN(c.Request.Context(), req.PIN)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) LoginAssistant(c *ginext.Context) {
	var req dto.AssistantLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.LoginAssistant(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Data

func (h *Handler) InitialData(c *ginext.Context) {
	userID := c.Query("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return
	}

	data, err := h.ticketService.InitialData(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ToInitialDataResponse(data)
	resp.SyncIntervalSeconds = int(h.syncInterval.Seconds())

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Sync(c *ginext.Context) {
	userID := c.Query("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return
	}

	tickets, err := h.ticketService.Sync(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	opType, ok := domain.ParseOperationType(req.OperationType)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid operation_type"})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid ends_at format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		OperationType: opType,
		Name:          req.Name,
		Venue:         req.Venue,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListEventTickets(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	tickets, err := h.ticketService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Tickets

func (h *Handler) CreateTicket(c *ginext.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticketType, ok := domain.ParseTicketType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket type"})
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), domain.CreateTicketInput{
		EventID:        req.EventID,
		OwnerUserID:    req.OwnerUserID,
		Code:           req.Code,
		Type:           ticketType,
		MetadataDetail: req.MetadataDetail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) BlockTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.Block(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "blocked"})
}

func (h *Handler) UnblockTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.Unblock(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "valid"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	role, ok := domain.ParseUserRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role"})
		return
	}

	input := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
		PIN:   req.PIN,
	}
	if req.Permissions != nil {
		input.Permissions = &domain.Permissions{
			AllowedOperationTypes: req.Permissions.AllowedOperationTypes,
			AllowedGates:          req.Permissions.AllowedGates,
			AllowedModes:          req.Permissions.AllowedModes,
			CanSwitchProfile:      req.Permissions.CanSwitchProfile,
			CanOfflineContingency: req.Permissions.CanOfflineContingency,
		}
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBadPIN):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTicketUsed),
		errors.Is(err, domain.ErrTicketBlocked),
		errors.Is(err, domain.ErrScanInFlight),
		errors.Is(err, domain.ErrCodeTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrPINTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
