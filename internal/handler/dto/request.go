package dto

type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type AssistantLoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ValidateRequest struct {
	Code          string `json:"code" binding:"required"`
	DeviceID      string `json:"device_id" binding:"required"`
	StaffUserID   string `json:"staff_user_id"`
	EventID       string `json:"event_id" binding:"required,uuid"`
	OperationType string `json:"operation_type"`
	Mode          string `json:"mode" binding:"required"`
	Gate          string `json:"gate"`
}

type CreateEventRequest struct {
	OperationType string `json:"operation_type" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Venue         string `json:"venue"`
	StartsAt      string `json:"starts_at" binding:"required"`
	EndsAt        string `json:"ends_at" binding:"required"`
}

type CreateTicketRequest struct {
	EventID        string `json:"event_id" binding:"required,uuid"`
	OwnerUserID    string `json:"owner_user_id" binding:"required,uuid"`
	Code           string `json:"code" binding:"required"`
	Type           string `json:"type" binding:"required"`
	MetadataDetail string `json:"metadata_detail"`
}

type PermissionsRequest struct {
	AllowedOperationTypes []string `json:"allowed_operation_types"`
	AllowedGates          []string `json:"allowed_gates"`
	AllowedModes          []string `json:"allowed_modes"`
	CanSwitchProfile      bool     `json:"can_switch_profile"`
	CanOfflineContingency bool     `json:"can_offline_contingency"`
}

type CreateUserRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email"`
	Role        string              `json:"role" binding:"required"`
	PIN         string              `json:"pin"`
	Permissions *PermissionsRequest `json:"permissions"`
}
