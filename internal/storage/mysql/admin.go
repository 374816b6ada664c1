package mysql

import (
	"context"
	"fmt"

	"kitchen-golang/internal/storage"
)

func (s *Storage) GetLaborCoefficients(ctx context.Context) ([]*storage.LaborCoefficient, error) {
	const op = "storage.mysql.admin.GetLaborCoefficients"

	stmt := `SELECT id, type, value, is_active FROM kc_labor_coefficient`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var coeffs []*storage.LaborCoefficient
	for rows.Next() {
		coef := &storage.LaborCoefficient{}

		if err := rows.Scan(&coef.ID, &coef.Type, &coef.Value, &coef.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		coeffs = append(coeffs, coef)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return coeffs, nil
}

func (s *Storage) UpdateLaborCoefficients(ctx context.Context, coeffs []storage.LaborCoefficient) error {
	const op = "storage.mysql.admin.UpdateLaborCoefficients"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE kc_labor_coefficient
		SET value = ?, is_active = ?
		WHERE id = ? AND type = ?
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	for _, coef := range coeffs {
		_, err := stmt.ExecContext(ctx, coef.Value, coef.IsActive, coef.ID, coef.Type)
		if err != nil {
			return fmt.Errorf("%s: update id=%d: %w", op, coef.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
