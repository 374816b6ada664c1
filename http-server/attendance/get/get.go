package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"kitchen-golang/internal/capacity"
	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/service/reporting"
)

type ResponseAttendance struct {
	Days    []*capacity.DayAggregate `json:"days"`
	Summary capacity.RangeSummary    `json:"summary"`
	Status  string                   `json:"status"`
	Error   string                   `json:"error,omitempty"`
}

type AttendanceBuilder interface {
	BuildAttendance(ctx context.Context, r daterange.Range) (*reporting.AttendanceResult, error)
}

func GetAttendance(log *slog.Logger, builder AttendanceBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.attendance.get.GetAttendance"

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

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := builder.BuildAttendance(ctx, rng)
		if err != nil {
			log.Error("failed to build attendance", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseAttendance{Error: "no data for this range"})
			return
		}

		render.JSON(w, r, ResponseAttendance{
			Days:    result.Days,
			Summary: result.Summary,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
