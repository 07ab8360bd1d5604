package repositories

import (
	"context"
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// AttendanceRepositoryFacade defines persistence operations for attendance records.
type AttendanceRepositoryFacade interface {
	// SaveAttendance persists a new punch-in record.
	SaveAttendance(ctx context.Context, attendance domain.Attendance) error

	// FindOpenAttendance retrieves the latest record without a punch-out for
	// the user on the given work date.
	FindOpenAttendance(ctx context.Context, userID string, workDate time.Time) (*domain.Attendance, error)

	// UpdateAttendance updates an existing record (sets the punch-out time).
	UpdateAttendance(ctx context.Context, attendance domain.Attendance) error

	// ListAttendanceByUser retrieves the records of one user, newest first.
	ListAttendanceByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Attendance, error)
}
