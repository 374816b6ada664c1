package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"kitchen-golang/internal/storage"
)

// GetLatestPrices is a batched lookup returning only the newest price row
// per requested material. Materials without prices are simply absent.
func (s *Storage) GetLatestPrices(ctx context.Context, materialIDs []string) ([]*storage.MaterialPrice, error) {
	const op = "storage.mysql.prices.GetLatestPrices"

	if len(materialIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(materialIDs)), ",")
	args := make([]interface{}, 0, len(materialIDs))
	for _, id := range materialIDs {
		args = append(args, id)
	}

	stmt := fmt.Sprintf(`
		SELECT p.material_id, p.price_per_unit, p.display_unit, p.price_per_base_unit, p.display_to_base_rate
		FROM kc_material_price p
		JOIN (
			SELECT material_id, MAX(effective_date) AS max_date
			FROM kc_material_price
			WHERE material_id IN (%s)
			GROUP BY material_id
		) latest ON p.material_id = latest.material_id AND p.effective_date = latest.max_date
	`, placeholders)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var prices []*storage.MaterialPrice
	for rows.Next() {
		price := &storage.MaterialPrice{}
		var displayUnit sql.NullString
		var perBase, toBase sql.NullFloat64

		err := rows.Scan(&price.MaterialID, &price.PricePerUnit, &displayUnit, &perBase, &toBase)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		price.DisplayUnit = displayUnit.String
		price.PricePerBaseUnit = perBase.Float64
		price.DisplayToBaseRate = toBase.Float64

		prices = append(prices, price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return prices, nil
}
