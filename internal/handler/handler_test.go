package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lucasromanh/TiketeraValidator/internal/audit"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/handler/dto"
	hmocks "github.com/lucasromanh/TiketeraValidator/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	validation *hmocks.MockValidationSvc
	events     *hmocks.MockEventSvc
	tickets    *hmocks.MockTicketSvc
	users      *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		validation: hmocks.NewMockValidationSvc(t),
		events:     hmocks.NewMockEventSvc(t),
		tickets:    hmocks.NewMockTicketSvc(t),
		users:      hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.validation, m.events, m.tickets, m.users, 3*time.Second)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/login/assistant", h.LoginAssistant)
		api.GET("/data", h.InitialData)
		api.GET("/sync", h.Sync)
		api.POST("/validate", h.Validate)
		api.GET("/scans", h.ListScans)
		api.GET("/scans/report", h.ScanReport)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/tickets", h.ListEventTickets)
		api.POST("/tickets", h.CreateTicket)
		api.POST("/tickets/:id/block", h.BlockTicket)
		api.POST("/tickets/:id/unblock", h.UnblockTicket)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Validation ---

func validateRequest() dto.ValidateRequest {
	return dto.ValidateRequest{
		Code:          "ticket:ABC123",
		DeviceID:      "device-1",
		StaffUserID:   uuid.New().String(),
		EventID:       uuid.New().String(),
		OperationType: "BOLICHE",
		Mode:          "ENTRY",
		Gate:          "GATE A",
	}
}

func TestHandler_Validate_Approved(t *testing.T) {
	m, r := setupRouter(t)

	req := validateRequest()
	usedAt := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:         uuid.New().String(),
		EventID:    req.EventID,
		Code:       "ABC123",
		Type:       domain.TicketTypeEntry,
		Status:     domain.TicketStatusUsed,
		UsedAt:     &usedAt,
		UsedInMode: "ENTRY",
		CreatedAt:  time.Now(),
	}

	m.validation.EXPECT().
		Validate(mock.Anything, req.Code, mock.Anything).
		Return(domain.Approved(ticket))

	w := doJSON(t, r, http.MethodPost, "/api/validate", req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Result)
	require.NotNil(t, resp.Ticket)
	assert.Equal(t, ticket.ID, resp.Ticket.ID)
}

func TestHandler_Validate_RejectedIsStillOK(t *testing.T) {
	m, r := setupRouter(t)

	req := validateRequest()
	m.validation.EXPECT().
		Validate(mock.Anything, req.Code, mock.Anything).
		Return(domain.Rejected(domain.ReasonUsed))

	w := doJSON(t, r, http.MethodPost, "/api/validate", req)

	// A rejection is a decision, not a transport failure.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "REJECTED", resp.Result)
	assert.Equal(t, "USED", resp.Reason)
}

func TestHandler_Validate_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/validate", map[string]string{"code": "ABC"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Validate_SecondInFlightIsConflict(t *testing.T) {
	m, r := setupRouter(t)

	req := validateRequest()

	entered := make(chan struct{})
	release := make(chan struct{})

	m.validation.EXPECT().
		Validate(mock.Anything, req.Code, mock.Anything).
		Run(func(_ context.Context, _ string, _ domain.SessionContext) {
			close(entered)
			<-release
		}).
		Return(domain.Approved(&domain.Ticket{ID: "t1", Status: domain.TicketStatusUsed}))

	var wg sync.WaitGroup
	wg.Add(1)
	var firstCode int
	go func() {
		defer wg.Done()
		w := doJSON(t, r, http.MethodPost, "/api/validate", req)
		firstCode = w.Code
	}()

	<-entered

	// Same device while the first is outstanding: refused, not queued.
	w := doJSON(t, r, http.MethodPost, "/api/validate", req)
	assert.Equal(t, http.StatusConflict, w.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, firstCode)
}

func TestHandler_ListScans(t *testing.T) {
	m, r := setupRouter(t)

	attempts := []domain.ScanAttempt{
		{ID: "a1", DeviceID: "device-1", Result: domain.ScanApproved, Timestamp: time.Now()},
		{ID: "a2", DeviceID: "device-1", Result: domain.ScanRejected, Reason: domain.ReasonUsed, Timestamp: time.Now()},
	}
	m.validation.EXPECT().Attempts("device-1").Return(attempts)

	w := doJSON(t, r, http.MethodGet, "/api/scans?device_id=device-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ScanAttemptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "a1", resp[0].ID)
}

func TestHandler_ListScans_RequiresDeviceID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/scans", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ScanReport(t *testing.T) {
	m, r := setupRouter(t)

	m.validation.EXPECT().Report("device-1").Return(audit.Report{
		Total:    3,
		Approved: 2,
		Rejected: 1,
		ByReason: map[domain.RejectReason]int{domain.ReasonUsed: 1},
	})

	w := doJSON(t, r, http.MethodGet, "/api/scans/report?device_id=device-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.ByReason["USED"])
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     "Lucía",
		Role:     domain.RoleStaff,
		IsActive: true,
		Permissions: &domain.Permissions{
			AllowedOperationTypes: []string{"BOLICHE"},
			AllowedGates:          []string{"GATE A"},
			AllowedModes:          []string{"ENTRY", "VIP"},
		},
		CreatedAt: time.Now(),
	}
	m.users.EXPECT().LoginPIN(mock.Anything, "1234").Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{PIN: "1234"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STAFF", resp.Role)
	require.NotNil(t, resp.Permissions)
	assert.Contains(t, resp.Permissions.AllowedModes, "VIP")
}

func TestHandler_Login_BadPIN(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().LoginPIN(mock.Anything, "0000").Return(nil, domain.ErrBadPIN)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{PIN: "0000"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_LoginAssistant_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     "Marcos",
		Email:    "marcos@example.com",
		Role:     domain.RoleAssistant,
		IsActive: true,
	}
	m.users.EXPECT().
		LoginAssistant(mock.Anything, "Marcos", "marcos@example.com").
		Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/login/assistant", dto.AssistantLoginRequest{
		Name:  "Marcos",
		Email: "marcos@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ASSISTANT", resp.Role)
	assert.Nil(t, resp.Permissions)
}

func TestHandler_LoginAssistant_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login/assistant", dto.AssistantLoginRequest{
		Name:  "Marcos",
		Email: "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Data ---

func TestHandler_InitialData(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	data := &domain.InitialData{
		Events: []*domain.EventSession{
			{ID: "e1", OperationType: domain.OperationCine, Name: "Estreno", Status: domain.EventStatusActive},
		},
		Tickets: []*domain.Ticket{
			{ID: "t1", EventID: "e1", Code: "C1", Type: domain.TicketTypeSeat, Status: domain.TicketStatusValid},
		},
	}
	m.tickets.EXPECT().InitialData(mock.Anything, userID).Return(data, nil)

	w := doJSON(t, r, http.MethodGet, "/api/data?user_id="+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.InitialDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, []string{"ENTRY", "SEAT", "POPCORN"}, resp.Events[0].Modes)
	assert.Equal(t, 3, resp.SyncIntervalSeconds)
}

func TestHandler_Sync(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	usedAt := time.Now().UTC()
	tickets := []*domain.Ticket{
		{ID: "t1", Status: domain.TicketStatusUsed, UsedAt: &usedAt, UsedInMode: "ENTRY"},
		{ID: "t2", Status: domain.TicketStatusValid},
	}
	m.tickets.EXPECT().Sync(mock.Anything, userID).Return(tickets, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sync?user_id="+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "USED", resp[0].Status)
	assert.NotEmpty(t, resp[0].UsedAt)
}

func TestHandler_Sync_InvalidUserID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sync?user_id=nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	starts := time.Now().Add(2 * time.Hour).UTC()
	ends := starts.Add(6 * time.Hour)
	event := &domain.EventSession{
		ID:            uuid.New().String(),
		OperationType: domain.OperationBoliche,
		Name:          "Noche Electrónica",
		Venue:         "Club Central",
		StartsAt:      starts,
		EndsAt:        ends,
		Status:        domain.EventStatusUpcoming,
		CreatedAt:     time.Now(),
	}
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OperationType: "BOLICHE",
		Name:          "Noche Electrónica",
		Venue:         "Club Central",
		StartsAt:      starts.Format(time.RFC3339),
		EndsAt:        ends.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Noche Electrónica", resp.Name)
	assert.Equal(t, []string{"ENTRY", "VIP", "DRINK"}, resp.Modes)
}

func TestHandler_CreateEvent_InvalidOperationType(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OperationType: "CIRCUS",
		Name:          "X",
		StartsAt:      time.Now().Format(time.RFC3339),
		EndsAt:        time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OperationType: "CINE",
		Name:          "X",
		StartsAt:      "not-a-date",
		EndsAt:        time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.events.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything).Return([]*domain.EventSession{
		{ID: "e1", OperationType: domain.OperationEvento, Name: "Festival"},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

// --- Tickets ---

func TestHandler_CreateTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	req := dto.CreateTicketRequest{
		EventID:     uuid.New().String(),
		OwnerUserID: uuid.New().String(),
		Code:        "ABC123",
		Type:        "VIP",
	}
	ticket := &domain.Ticket{
		ID:          uuid.New().String(),
		EventID:     req.EventID,
		OwnerUserID: req.OwnerUserID,
		Code:        "ABC123",
		Type:        domain.TicketTypeVIP,
		Status:      domain.TicketStatusValid,
		CreatedAt:   time.Now(),
	}
	m.tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(ticket, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALID", resp.Status)
}

func TestHandler_CreateTicket_DuplicateCode(t *testing.T) {
	m, r := setupRouter(t)

	m.tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrCodeTaken)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", dto.CreateTicketRequest{
		EventID:     uuid.New().String(),
		OwnerUserID: uuid.New().String(),
		Code:        "ABC123",
		Type:        "ENTRY",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BlockTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	ticketID := uuid.New().String()
	m.tickets.EXPECT().Block(mock.Anything, ticketID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+ticketID+"/block", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BlockTicket_AlreadyUsed(t *testing.T) {
	m, r := setupRouter(t)

	ticketID := uuid.New().String()
	m.tickets.EXPECT().Block(mock.Anything, ticketID).Return(domain.ErrTicketUsed)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+ticketID+"/block", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UnblockTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	ticketID := uuid.New().String()
	m.tickets.EXPECT().Unblock(mock.Anything, ticketID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+ticketID+"/unblock", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UnblockTicket_AlreadyUsed(t *testing.T) {
	m, r := setupRouter(t)

	ticketID := uuid.New().String()
	m.tickets.EXPECT().Unblock(mock.Anything, ticketID).Return(domain.ErrTicketUsed)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+ticketID+"/unblock", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     "Ana",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name: "Ana",
		Role: "ADMIN",
		PIN:  "9999",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.users.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateUser_InvalidRole(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name: "Ana",
		Role: "SUPERVISOR",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
