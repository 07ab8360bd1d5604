package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(db *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryFacade
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `attendance_id, user_id, work_date, punch_in_at, punch_out_at`

func scanAttendance(row pgx.Row) (*domain.Attendance, error) {
	var a domain.Attendance
	err := row.Scan(
		&a.AttendanceID,
		&a.UserID,
		&a.WorkDate,
		&a.PunchInAt,
		&a.PunchOutAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) error {
	query := `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		attendance.AttendanceID,
		attendance.UserID,
		attendance.WorkDate,
		attendance.PunchInAt,
		attendance.PunchOutAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxAttendanceRepository) FindOpenAttendance(ctx context.Context, userID string, workDate time.Time) (*domain.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND work_date = $2 AND punch_out_at IS NULL
		ORDER BY punch_in_at DESC
		LIMIT 1;
	`
	record, err := scanAttendance(r.Pool.QueryRow(ctx, query, userID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open attendance: %w", err)
	}
	return record, nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	query := `
		UPDATE attendance SET punch_out_at = $2
		WHERE attendance_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, attendance.AttendanceID, attendance.PunchOutAt)
	if err != nil {
		return fmt.Errorf("failed to update attendance %s: %w", attendance.AttendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAttendanceRepository) ListAttendanceByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Attendance, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1
		ORDER BY punch_in_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	records := []domain.Attendance{}
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}
	return records, nil
}
