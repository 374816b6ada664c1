package mysql

import (
	"context"
	"fmt"

	"kitchen-golang/internal/storage"
)

// GetJobIndex returns the broad code/name index strict search resolves
// against. Loaded once per process by the reporting service.
func (s *Storage) GetJobIndex(ctx context.Context) ([]storage.JobRef, error) {
	const op = "storage.mysql.job_index.GetJobIndex"

	stmt := `SELECT DISTINCT job_code, job_name FROM kc_work_plan ORDER BY job_code`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var refs []storage.JobRef
	for rows.Next() {
		var ref storage.JobRef

		if err := rows.Scan(&ref.JobCode, &ref.JobName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return refs, nil
}
