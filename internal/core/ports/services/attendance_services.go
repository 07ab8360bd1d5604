package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// AttendanceSvcFacade defines attendance punch operations.
type AttendanceSvcFacade interface {
	// PunchIn opens an attendance record for the caller. A second punch-in
	// while one is open returns ErrConflict.
	PunchIn(ctx context.Context, caller domain.User) (*domain.Attendance, error)

	// PunchOut closes the caller's open attendance record. Without an open
	// record it returns ErrNotFound.
	PunchOut(ctx context.Context, caller domain.User) (*domain.Attendance, error)

	// ListAttendance retrieves attendance records for a user. Staff may only
	// read their own; owners may read anyone in the organization.
	ListAttendance(ctx context.Context, caller domain.User, targetUserID string, limit, offset int) ([]domain.Attendance, error)
}
