package storage

import "time"

// Job is one production work order for one production date, as the ERP
// hands it over. The three operator fields are alternative encodings of the
// same assignment list; which one is filled depends on which screen the row
// was entered from.
type Job struct {
	ID             int        `json:"id"`
	JobCode        string     `json:"job_code"`
	JobName        string     `json:"job_name"`
	ProductionDate time.Time  `json:"production_date"`
	PlannedStart   *time.Time `json:"planned_start"`
	PlannedEnd     *time.Time `json:"planned_end"`
	ActualStart    *time.Time `json:"actual_start"`
	ActualEnd      *time.Time `json:"actual_end"`
	Status         string     `json:"status"`
	OutputQty      float64    `json:"output_qty"`

	OperatorsJoined   string           `json:"operators_joined"`
	OperatorRecords   []OperatorRecord `json:"operator_records"`
	OperatorsFallback string           `json:"operators_fallback"`
}

// OperatorRecord is one entry of the structured operator encoding. Upstream
// forms disagree about which field carries the display name.
type OperatorRecord struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Fullname    string `json:"fullname"`
	DisplayName string `json:"display_name"`
	ThName      string `json:"th_name"`
	ThaiName    string `json:"thai_name"`
	Code        string `json:"code"`
}

// JobRef is one entry of the broad job index used for exact-match search.
type JobRef struct {
	JobCode string `json:"job_code"`
	JobName string `json:"job_name"`
}
