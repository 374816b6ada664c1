package reporting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"kitchen-golang/internal/capacity"
	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/report"
	"kitchen-golang/internal/roster"
	"kitchen-golang/internal/storage"
)

type ReportStorage interface {
	GetJobsByDay(ctx context.Context, day time.Time, search string) ([]*storage.Job, error)
	GetBomByJobCode(ctx context.Context, jobCode string) ([]*storage.BomLine, error)
	GetLatestPrices(ctx context.Context, materialIDs []string) ([]*storage.MaterialPrice, error)
	GetJobIndex(ctx context.Context) ([]storage.JobRef, error)
	GetLaborCoefficients(ctx context.Context) ([]*storage.LaborCoefficient, error)
}

type ReportService struct {
	storage  ReportStorage
	defaults report.LaborParams

	mu       sync.Mutex
	jobIndex []storage.JobRef
}

func NewReportService(storage ReportStorage, defaults report.LaborParams) *ReportService {
	return &ReportService{storage: storage, defaults: defaults}
}

// Params describes one report request.
type Params struct {
	Range  daterange.Range
	Search string
	Strict bool
	Labor  report.LaborParams
}

// Result carries the row-level report and the capacity view for the same
// range, built from one consistent fetch.
type Result struct {
	Rows    []*report.Row            `json:"rows"`
	Days    []*capacity.DayAggregate `json:"days"`
	Summary capacity.RangeSummary    `json:"summary"`
}

// AttendanceResult is the capacity view alone.
type AttendanceResult struct {
	Days    []*capacity.DayAggregate `json:"days"`
	Summary capacity.RangeSummary    `json:"summary"`
}

// BuildReport fetches the range and derives report rows plus capacity
// aggregates. Any day failing discards the whole fetch; a partial range is
// never rendered as a finished report.
func (s *ReportService) BuildReport(ctx context.Context, p Params) (*Result, error) {
	const op = "service.reporting.BuildReport"

	jobs, err := s.fetchJobs(ctx, p.Range, p.Search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bomIndex, priceIndex, err := s.fetchCosting(ctx, jobs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var jobIndex []storage.JobRef
	if p.Strict && p.Search != "" {
		jobIndex, err = s.JobIndex(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	rows := report.BuildRows(jobs, bomIndex, priceIndex, jobIndex, report.Query{
		Range:  p.Range,
		Search: p.Search,
		Strict: p.Strict,
	}, p.Labor)

	days := capacity.Aggregate(jobs, p.Range)

	return &Result{
		Rows:    rows,
		Days:    days,
		Summary: capacity.Summarize(days),
	}, nil
}

// BuildAttendance derives the capacity view only.
func (s *ReportService) BuildAttendance(ctx context.Context, r daterange.Range) (*AttendanceResult, error) {
	const op = "service.reporting.BuildAttendance"

	jobs, err := s.fetchJobs(ctx, r, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	days := capacity.Aggregate(jobs, r)

	return &AttendanceResult{
		Days:    days,
		Summary: capacity.Summarize(days),
	}, nil
}

// ListOperators returns the distinct production operator names seen across
// a range, for the admin roster view.
func (s *ReportService) ListOperators(ctx context.Context, r daterange.Range) ([]string, error) {
	const op = "service.reporting.ListOperators"

	jobs, err := s.fetchJobs(ctx, r, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, job := range jobs {
		for _, name := range roster.ProductionNames(job) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// JobIndex loads the broad job index once and serves it from memory after.
func (s *ReportService) JobIndex(ctx context.Context) ([]storage.JobRef, error) {
	const op = "service.reporting.JobIndex"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.jobIndex != nil {
		return s.jobIndex, nil
	}

	index, err := s.storage.GetJobIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.jobIndex = index
	return index, nil
}

// LaborParams resolves the wage and markup percentages: active coefficient
// rows from the admin panel override the configured defaults.
func (s *ReportService) LaborParams(ctx context.Context) (report.LaborParams, error) {
	const op = "service.reporting.LaborParams"

	params := s.defaults

	coeffs, err := s.storage.GetLaborCoefficients(ctx)
	if err != nil {
		return report.LaborParams{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, coef := range coeffs {
		if coef == nil || !coef.IsActive {
			continue
		}
		switch coef.Type {
		case storage.CoefDailyWage:
			params.DailyWage = coef.Value
		case storage.CoefOverheadPct:
			params.OverheadPct = coef.Value
		case storage.CoefUtilityPct:
			params.UtilityPct = coef.Value
		}
	}

	return params, nil
}

// fetchJobs pulls each day of the range on its own goroutine and merges by
// day order only after every fetch resolved. An error from any day throws
// the whole batch away.
func (s *ReportService) fetchJobs(ctx context.Context, r daterange.Range, search string) ([]*storage.Job, error) {
	perDay := make([][]*storage.Job, r.NumDays())

	g, gCtx := errgroup.WithContext(ctx)
	i := 0
	for day := range r.Days() {
		idx, day := i, day
		g.Go(func() error {
			rows, err := s.storage.GetJobsByDay(gCtx, day, search)
			if err != nil {
				return fmt.Errorf("jobs %s: %w", daterange.Key(day), err)
			}
			perDay[idx] = rows
			return nil
		})
		i++
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var jobs []*storage.Job
	for _, rows := range perDay {
		jobs = append(jobs, rows...)
	}

	return jobs, nil
}

// fetchCosting loads BOMs per distinct job code concurrently, then one
// batched price lookup for every material seen. Jobs without a code are
// skipped: no BOM yet is a legitimate state, not an error.
func (s *ReportService) fetchCosting(ctx context.Context, jobs []*storage.Job) (map[string][]*storage.BomLine, map[string]*storage.MaterialPrice, error) {
	var codes []string
	seen := make(map[string]bool)
	for _, job := range jobs {
		if job.JobCode == "" || seen[job.JobCode] {
			continue
		}
		seen[job.JobCode] = true
		codes = append(codes, job.JobCode)
	}

	bomIndex := make(map[string][]*storage.BomLine, len(codes))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			lines, err := s.storage.GetBomByJobCode(gCtx, code)
			if err != nil {
				return fmt.Errorf("bom %s: %w", code, err)
			}
			mu.Lock()
			bomIndex[code] = lines
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	materialSeen := make(map[string]bool)
	var materialIDs []string
	for _, lines := range bomIndex {
		for _, line := range lines {
			if line.MaterialID == "" || materialSeen[line.MaterialID] {
				continue
			}
			materialSeen[line.MaterialID] = true
			materialIDs = append(materialIDs, line.MaterialID)
		}
	}
	sort.Strings(materialIDs)

	priceIndex := make(map[string]*storage.MaterialPrice, len(materialIDs))
	if len(materialIDs) > 0 {
		prices, err := s.storage.GetLatestPrices(ctx, materialIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("prices: %w", err)
		}
		// Materials absent from the result simply stay unpriced.
		for _, price := range prices {
			priceIndex[price.MaterialID] = price
		}
	}

	return bomIndex, priceIndex, nil
}
