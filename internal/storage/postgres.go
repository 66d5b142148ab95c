package storage

import (
	"context"
	"database/sql"
	"fmt"

	"waiterboard/internal/domain"
)

type PostgresJournal struct {
	db *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

func (j *PostgresJournal) RecordAction(ctx context.Context, record domain.ActionRecord) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO staff_actions (action, order_id, staff_id, amount, method)
		VALUES ($1, $2, $3, $4, $5)
	`, record.Action, record.OrderID, record.StaffID, record.Amount, record.Method)
	if err != nil {
		return fmt.Errorf("failed to journal action: %w", err)
	}
	return nil
}

func (j *PostgresJournal) Summary(ctx context.Context, staffID string) (domain.ShiftSummary, error) {
	summary := domain.ShiftSummary{
		StaffID:  staffID,
		ByMethod: make(map[string]float64),
	}

	err := j.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE action = 'serve'),
			COUNT(*) FILTER (WHERE action = 'transfer'),
			COUNT(*) FILTER (WHERE action = 'payment'),
			COALESCE(SUM(amount) FILTER (WHERE action = 'payment'), 0)
		FROM staff_actions
		WHERE staff_id = $1 AND created_at::date = CURRENT_DATE
	`, staffID).Scan(&summary.OrdersServed, &summary.Transfers,
		&summary.PaymentsTaken, &summary.TotalCollected)
	if err != nil {
		return domain.ShiftSummary{}, fmt.Errorf("failed to load shift summary: %w", err)
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT method, SUM(amount)
		FROM staff_actions
		WHERE staff_id = $1 AND action = 'payment' AND created_at::date = CURRENT_DATE
		GROUP BY method
	`, staffID)
	if err != nil {
		return domain.ShiftSummary{}, fmt.Errorf("failed to load payment breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var total float64
		if err := rows.Scan(&method, &total); err != nil {
			return domain.ShiftSummary{}, err
		}
		summary.ByMethod[method] = total
	}
	return summary, rows.Err()
}
