package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"kitchen-golang/internal/storage"
)

func (s *Storage) GetBomByJobCode(ctx context.Context, jobCode string) ([]*storage.BomLine, error) {
	const op = "storage.mysql.bom.GetBomByJobCode"

	// A missing job code means no BOM, not a failure.
	if jobCode == "" {
		return nil, nil
	}

	stmt := `
		SELECT job_code, material_id, quantity, unit, is_finished_good, price, std_price
		FROM kc_bom
		WHERE job_code = ?
		ORDER BY material_id
	`

	rows, err := s.db.QueryContext(ctx, stmt, jobCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lines []*storage.BomLine
	for rows.Next() {
		line := &storage.BomLine{}
		var unit sql.NullString
		var price, stdPrice sql.NullFloat64

		err := rows.Scan(&line.JobCode, &line.MaterialID, &line.Quantity, &unit, &line.FinishedGood, &price, &stdPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		line.Unit = unit.String
		line.Price = price.Float64
		line.StdPrice = stdPrice.Float64

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lines, nil
}
