package domain

import "time"

// UserStatus is the lifecycle state of a user account.
// REMOVED represents deletion; user rows are never physically deleted.
type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserRemoved  UserStatus = "REMOVED"
)

// User represents an application user. OrganizationID and TeamID are nil
// until the user joins an organization or team. AdminUserID is the optional
// manager (staff-of) reference used by the order assignment workflow.
type User struct {
	UserID         string     `json:"userID"` // Primary key (UUID)
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	OrganizationID *string    `json:"organizationID,omitempty"`
	TeamID         *string    `json:"teamID,omitempty"`
	IsStaff        bool       `json:"isStaff"`
	Status         UserStatus `json:"status"`
	AdminUserID    *string    `json:"adminUserID,omitempty"` // Self-referential manager FK
	AuditFields
}

// FullName returns the display name of the user.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// InOrganization reports whether the user belongs to the given organization.
func (u User) InOrganization(organizationID string) bool {
	return u.OrganizationID != nil && *u.OrganizationID == organizationID
}

// Customer is a buyer belonging to an organization. Orders reference a
// customer as the ordering party.
type Customer struct {
	CustomerID     string   `json:"customerID"`
	OrganizationID string   `json:"organizationID"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	AuditFields
}

// Attendance records one punch-in/punch-out cycle for a user on a work day.
type Attendance struct {
	AttendanceID string     `json:"attendanceID"`
	UserID       string     `json:"userID"`
	WorkDate     time.Time  `json:"workDate"`
	PunchInAt    time.Time  `json:"punchInAt"`
	PunchOutAt   *time.Time `json:"punchOutAt,omitempty"`
}
