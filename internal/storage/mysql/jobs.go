package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/storage"
)

// GetJobsByDateRange pulls the work plans of an inclusive day range,
// optionally narrowed by a substring search on code or name.
func (s *Storage) GetJobsByDateRange(ctx context.Context, from, to time.Time, search string) ([]*storage.Job, error) {
	const op = "storage.mysql.jobs.GetJobsByDateRange"

	stmt := `
		SELECT id, job_code, job_name, production_date,
		       planned_start, planned_end, actual_start, actual_end,
		       status, output_qty,
		       operators_joined, operator_records, operators_fallback
		FROM kc_work_plan
		WHERE production_date >= ? AND production_date <= ?
	`
	args := []interface{}{daterange.Key(from), daterange.Key(to)}

	if search != "" {
		stmt += " AND (job_code LIKE ? OR job_name LIKE ?)"
		args = append(args, "%"+search+"%", "%"+search+"%")
	}

	stmt += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var jobs []*storage.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return jobs, nil
}

// GetJobsByDay is the single-day form the reporting service fans out with.
func (s *Storage) GetJobsByDay(ctx context.Context, day time.Time, search string) ([]*storage.Job, error) {
	return s.GetJobsByDateRange(ctx, day, day, search)
}

func scanJob(rows *sql.Rows) (*storage.Job, error) {
	var job storage.Job
	var joined, fallback, records sql.NullString
	var plannedStart, plannedEnd, actualStart, actualEnd sql.NullTime

	err := rows.Scan(
		&job.ID, &job.JobCode, &job.JobName, &job.ProductionDate,
		&plannedStart, &plannedEnd, &actualStart, &actualEnd,
		&job.Status, &job.OutputQty,
		&joined, &records, &fallback,
	)
	if err != nil {
		return nil, err
	}

	job.PlannedStart = timePtr(plannedStart)
	job.PlannedEnd = timePtr(plannedEnd)
	job.ActualStart = timePtr(actualStart)
	job.ActualEnd = timePtr(actualEnd)
	job.OperatorsJoined = joined.String
	job.OperatorsFallback = fallback.String

	// The structured encoding lives in a JSON column; a blob that does not
	// parse is treated as absent so one dirty row cannot sink the report.
	if records.Valid && records.String != "" {
		if err := json.Unmarshal([]byte(records.String), &job.OperatorRecords); err != nil {
			job.OperatorRecords = nil
		}
	}

	return &job, nil
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
