package domain

import "time"

// Organization is the tenant boundary. Every other entity is scoped to
// exactly one organization and must never be visible outside of it.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary key (UUID)
	Name           string `json:"name"`
	Description    string `json:"description"`
	OwnerUserID    string `json:"ownerUserID"` // FK -> users.user_id
	Code           string `json:"code"`        // Short unique join code
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Team groups users within an organization.
type Team struct {
	TeamID         string  `json:"teamID"`
	OrganizationID string  `json:"organizationID"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	LeaderUserID   *string `json:"leaderUserID,omitempty"`
	Code           string  `json:"code"` // Short unique join code
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Capability is the permission level checked by the authorizer.
type Capability string

const (
	CapabilityOwner  Capability = "OWNER"  // Caller owns the organization
	CapabilityEditor Capability = "EDITOR" // Caller may edit catalog/ledger data
	CapabilityStaff  Capability = "STAFF"  // Caller is staff of the same organization
)
