package dto

import (
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// AttendanceResponse is the API representation of an attendance record.
type AttendanceResponse struct {
	AttendanceID string     `json:"attendance_id"`
	UserID       string     `json:"user_id"`
	WorkDate     string     `json:"work_date"`
	PunchInAt    time.Time  `json:"punch_in_at"`
	PunchOutAt   *time.Time `json:"punch_out_at,omitempty"`
}

// ToAttendanceResponse converts a domain attendance record.
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		UserID:       a.UserID,
		WorkDate:     a.WorkDate.Format("2006-01-02"),
		PunchInAt:    a.PunchInAt,
		PunchOutAt:   a.PunchOutAt,
	}
}

// ToAttendanceResponses converts a slice of domain attendance records.
func ToAttendanceResponses(records []domain.Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, ToAttendanceResponse(&records[i]))
	}
	return resp
}
