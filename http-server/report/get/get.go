package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"kitchen-golang/internal/capacity"
	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/report"
	"kitchen-golang/internal/service/reporting"
)

type ResponseReport struct {
	Rows       []*report.Row         `json:"rows"`
	Summary    capacity.RangeSummary `json:"summary"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalRows  int                   `json:"total_rows"`
	TotalPages int                   `json:"total_pages"`
	Status     string                `json:"status"`
	Error      string                `json:"error,omitempty"`
}

type ReportBuilder interface {
	BuildReport(ctx context.Context, p reporting.Params) (*reporting.Result, error)
	LaborParams(ctx context.Context) (report.LaborParams, error)
}

func GetReport(log *slog.Logger, builder ReportBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.get.GetReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		rng, err := daterange.Make(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			log.Error("invalid range", slog.String("error", err.Error()))
			http.Error(w, "invalid date range", http.StatusBadRequest)
			return
		}

		search := r.URL.Query().Get("search")
		strict := r.URL.Query().Get("strict") == "true"

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		labor, err := builder.LaborParams(ctx)
		if err != nil {
			log.Error("failed to resolve labor params", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseReport{Error: "no data for this range"})
			return
		}

		// Explicit per-render overrides from the percentage inputs.
		if v, err := strconv.ParseFloat(r.URL.Query().Get("overhead_pct"), 64); err == nil {
			labor.OverheadPct = v
		}
		if v, err := strconv.ParseFloat(r.URL.Query().Get("utility_pct"), 64); err == nil {
			labor.UtilityPct = v
		}

		result, err := builder.BuildReport(ctx, reporting.Params{
			Range:  rng,
			Search: search,
			Strict: strict,
			Labor:  labor,
		})
		if err != nil {
			// A failed fetch must not render as an empty report.
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("failed to build report", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseReport{Error: "no data for this range"})
			return
		}

		paged := report.Paginate(result.Rows, pageSize, page)

		render.JSON(w, r, ResponseReport{
			Rows:       paged.Rows,
			Summary:    result.Summary,
			Page:       paged.Page,
			PageSize:   paged.PageSize,
			TotalRows:  paged.TotalRows,
			TotalPages: paged.TotalPages,
			Status:     strconv.Itoa(http.StatusOK),
		})
	}
}
