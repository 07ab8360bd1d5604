package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
)

// AttendanceService implements punch-in/punch-out tracking.
type AttendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
}

var _ portssvc.AttendanceSvcFacade = (*AttendanceService)(nil)

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *AttendanceService {
	return &AttendanceService{
		BaseService:    BaseService{OrgAuthorizer: authorizer},
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// workDate truncates a timestamp to its UTC calendar day.
func workDate(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// PunchIn opens an attendance record for the caller.
func (s *AttendanceService) PunchIn(ctx context.Context, caller domain.User) (*domain.Attendance, error) {
	now := time.Now()
	day := workDate(now)

	open, err := s.attendanceRepo.FindOpenAttendance(ctx, caller.UserID, day)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check open attendance: %w", err)
	}
	if open != nil {
		return nil, fmt.Errorf("%w: already punched in", apperrors.ErrConflict)
	}

	record := domain.Attendance{
		AttendanceID: uuid.NewString(),
		UserID:       caller.UserID,
		WorkDate:     day,
		PunchInAt:    now,
	}
	if err := s.attendanceRepo.SaveAttendance(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save attendance", "user_id", caller.UserID)
		return nil, fmt.Errorf("failed to punch in: %w", err)
	}

	s.LogInfo(ctx, "Punched in", "user_id", caller.UserID)
	return &record, nil
}

// PunchOut closes the caller's open attendance record for today.
func (s *AttendanceService) PunchOut(ctx context.Context, caller domain.User) (*domain.Attendance, error) {
	now := time.Now()

	open, err := s.attendanceRepo.FindOpenAttendance(ctx, caller.UserID, workDate(now))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no open attendance record", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find open attendance: %w", err)
	}

	open.PunchOutAt = &now
	if err := s.attendanceRepo.UpdateAttendance(ctx, *open); err != nil {
		s.LogError(ctx, err, "Failed to close attendance", "attendance_id", open.AttendanceID)
		return nil, fmt.Errorf("failed to punch out: %w", err)
	}

	s.LogInfo(ctx, "Punched out", "user_id", caller.UserID)
	return open, nil
}

// ListAttendance retrieves attendance records for a user. Reading another
// user's records requires the owner capability in that user's organization.
func (s *AttendanceService) ListAttendance(ctx context.Context, caller domain.User, targetUserID string, limit, offset int) ([]domain.Attendance, error) {
	if targetUserID != caller.UserID {
		target, err := s.userRepo.FindUserByID(ctx, targetUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve attendance target: %w", err)
		}
		if target.OrganizationID == nil {
			return nil, fmt.Errorf("%w: cannot read this user's attendance", apperrors.ErrForbidden)
		}
		if err := s.AuthorizeUser(ctx, caller, *target.OrganizationID, domain.CapabilityOwner); err != nil {
			return nil, err
		}
	}

	records, err := s.attendanceRepo.ListAttendanceByUser(ctx, targetUserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
