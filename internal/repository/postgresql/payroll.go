package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollSelectColumns = `
	p.id, p.employee_id, p.period_month, p.period_year, p.basic_salary,
	p.allowance_housing, p.allowance_dearness, p.allowance_transport, p.allowance_other,
	p.bonus_performance, p.bonus_attendance, p.bonus_other,
	p.deduction_tax, p.deduction_provident_fund, p.deduction_social_insurance,
	p.deduction_loan, p.deduction_leave, p.deduction_other,
	p.gross_salary, p.net_salary, p.working_days, p.paid_leave_days, p.unpaid_leave_days,
	p.status, p.payment_date, p.remarks, p.created_at, p.updated_at,
	e.full_name, e.employee_code, e.department`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
		&rec.Allowances.Housing, &rec.Allowances.Dearness, &rec.Allowances.Transport, &rec.Allowances.Other,
		&rec.Bonuses.Performance, &rec.Bonuses.Attendance, &rec.Bonuses.Other,
		&rec.Deductions.Tax, &rec.Deductions.ProvidentFund, &rec.Deductions.SocialInsurance,
		&rec.Deductions.Loan, &rec.Deductions.Leave, &rec.Deductions.Other,
		&rec.GrossSalary, &rec.NetSalary, &rec.WorkingDays, &rec.PaidLeaveDays, &rec.UnpaidLeaveDays,
		&rec.Status, &rec.PaymentDate, &rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
	)
	return rec, err
}

func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_month, period_year, basic_salary,
			allowance_housing, allowance_dearness, allowance_transport, allowance_other,
			bonus_performance, bonus_attendance, bonus_other,
			deduction_tax, deduction_provident_fund, deduction_social_insurance,
			deduction_loan, deduction_leave, deduction_other,
			gross_salary, net_salary, working_days, paid_leave_days, unpaid_leave_days,
			status, remarks
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24
		)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Year, record.BasicSalary,
		record.Allowances.Housing, record.Allowances.Dearness, record.Allowances.Transport, record.Allowances.Other,
		record.Bonuses.Performance, record.Bonuses.Attendance, record.Bonuses.Other,
		record.Deductions.Tax, record.Deductions.ProvidentFund, record.Deductions.SocialInsurance,
		record.Deductions.Loan, record.Deductions.Leave, record.Deductions.Other,
		record.GrossSalary, record.NetSalary, record.WorkingDays, record.PaidLeaveDays, record.UnpaidLeaveDays,
		record.Status, record.Remarks,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return r.GetRecordByID(ctx, id)
}

func (r *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollSelectColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollSelectColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payroll_records p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+payrollSelectColumns+`
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE `+where+`
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

func (r *payrollRepositoryImpl) ListRecordsByEmployee(ctx context.Context, employeeID string, year *int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollSelectColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1
	`
	args := []interface{}{employeeID}
	if year != nil {
		query += " AND p.period_year = $2"
		args = append(args, *year)
	}
	query += " ORDER BY p.period_year DESC, p.period_month DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records by employee: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *payrollRepositoryImpl) MarkRecordsPaid(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, payment_date = NOW(), updated_at = NOW()
		WHERE id = ANY($1) AND status != $2
	`

	if _, err := q.Exec(ctx, query, ids, payroll.StatusPaid); err != nil {
		return fmt.Errorf("failed to mark payroll records paid: %w", err)
	}

	return nil
}

func (r *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var status payroll.Status
	err := q.QueryRow(ctx, `SELECT status FROM payroll_records WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to get payroll record status: %w", err)
	}
	if status == payroll.StatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}

	// Guard the status again in the delete itself; the record may have
	// been paid between the check and now.
	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1 AND status != $2`, id, payroll.StatusPaid)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCannotDeletePaidRecord
	}

	return nil
}
