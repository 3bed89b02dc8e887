package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
)

type leaveIntervalRepositoryImpl struct {
	db *database.DB
}

func NewLeaveIntervalRepository(db *database.DB) leave.IntervalRepository {
	return &leaveIntervalRepositoryImpl{db: db}
}

func (r *leaveIntervalRepositoryImpl) GetApprovedByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]leave.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, number_of_days,
			is_paid, status, reason, created_at, updated_at
		FROM leave_intervals
		WHERE employee_id = $1
			AND status = $2
			AND EXTRACT(MONTH FROM start_date) = $3
			AND EXTRACT(YEAR FROM start_date) = $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave intervals: %w", err)
	}
	defer rows.Close()

	var intervals []leave.Interval
	for rows.Next() {
		var iv leave.Interval
		if err := rows.Scan(
			&iv.ID, &iv.EmployeeID, &iv.Type, &iv.StartDate, &iv.EndDate,
			&iv.NumberOfDays, &iv.IsPaid, &iv.Status, &iv.Reason,
			&iv.CreatedAt, &iv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return intervals, nil
}
