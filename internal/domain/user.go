package domain

import "time"

type UserRole string

const (
	RoleAssistant UserRole = "ASSISTANT"
	RoleStaff     UserRole = "STAFF"
	RoleAdmin     UserRole = "ADMIN"
)

// Permissions scope what a staff or admin account may operate. Assistants
// carry none.
type Permissions struct {
	AllowedOperationTypes []string `json:"allowed_operation_types"`
	AllowedGates          []string `json:"allowed_gates"`
	AllowedModes          []string `json:"allowed_modes"`
	CanSwitchProfile      bool     `json:"can_switch_profile"`
	CanOfflineContingency bool     `json:"can_offline_contingency"`
}

type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	Role        UserRole     `json:"role"`
	PIN         string       `json:"-"`
	IsActive    bool         `json:"is_active"`
	Permissions *Permissions `json:"permissions,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateUserInput struct {
	Name        string
	Email       string
	Role        UserRole
	PIN         string
	Permissions *Permissions
}

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAssistant, RoleStaff, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}
