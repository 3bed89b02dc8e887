package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/increment"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type incrementPolicyRepositoryImpl struct {
	db *database.DB
}

func NewIncrementPolicyRepository(db *database.DB) increment.PolicyRepository {
	return &incrementPolicyRepositoryImpl{db: db}
}

func (r *incrementPolicyRepositoryImpl) GetActive(ctx context.Context) (increment.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, interval_years, kind, value, is_active, last_updated_by, created_at, updated_at
		FROM increment_policies
		WHERE is_active = true
	`

	var p increment.Policy
	err := q.QueryRow(ctx, query).Scan(
		&p.ID, &p.IntervalYears, &p.Kind, &p.Value, &p.IsActive,
		&p.LastUpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return increment.Policy{}, increment.ErrNoActivePolicy
		}
		return increment.Policy{}, fmt.Errorf("failed to get active increment policy: %w", err)
	}

	return p, nil
}

func (r *incrementPolicyRepositoryImpl) ReplaceActive(ctx context.Context, policy increment.Policy) (increment.Policy, error) {
	var replaced increment.Policy

	// Deactivate-all then insert in one transaction keeps the
	// single-active-policy invariant under concurrent writers.
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE increment_policies SET is_active = false, updated_at = NOW() WHERE is_active = true`); err != nil {
			return fmt.Errorf("failed to deactivate increment policies: %w", err)
		}

		query := `
			INSERT INTO increment_policies (interval_years, kind, value, is_active, last_updated_by)
			VALUES ($1, $2, $3, true, $4)
			RETURNING id, interval_years, kind, value, is_active, last_updated_by, created_at, updated_at
		`
		return tx.QueryRow(ctx, query,
			policy.IntervalYears, policy.Kind, policy.Value, policy.LastUpdatedBy,
		).Scan(
			&replaced.ID, &replaced.IntervalYears, &replaced.Kind, &replaced.Value,
			&replaced.IsActive, &replaced.LastUpdatedBy, &replaced.CreatedAt, &replaced.UpdatedAt,
		)
	})
	if err != nil {
		return increment.Policy{}, err
	}

	return replaced, nil
}
