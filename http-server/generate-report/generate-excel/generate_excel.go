package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/report"
	"kitchen-golang/internal/service/exportstore"
	"kitchen-golang/internal/service/reporting"
)

const downloadTTL = 10 * time.Minute

type ResponseExport struct {
	Token    string `json:"token"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, p reporting.Params) ([]byte, error)
}

type LaborParamsProvider interface {
	LaborParams(ctx context.Context) (report.LaborParams, error)
}

// GenerateReportExcel builds the workbook and parks it behind a one-shot
// download token, so the frontend can hand the browser a plain link.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler, params LaborParamsProvider, store *exportstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate-excel.GenerateReportExcel"

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")

		// Default to the current month when no range is given.
		now := time.Now()
		if fromStr == "" {
			fromStr = daterange.Key(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
		}
		if toStr == "" {
			toStr = daterange.Key(now)
		}

		rng, err := daterange.Make(fromStr, toStr)
		if err != nil {
			http.Error(w, "invalid date range", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		labor, err := params.LaborParams(ctx)
		if err != nil {
			log.Error("failed to resolve labor params", "op", op, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		excelBytes, err := gen.GenerateExcel(ctx, reporting.Params{
			Range:  rng,
			Search: r.URL.Query().Get("search"),
			Strict: r.URL.Query().Get("strict") == "true",
			Labor:  labor,
		})
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Kitchen_Cost_Report_%s.xlsx", time.Now().Format("2006-01-02_150405"))
		token := store.Put(fileName, excelBytes, downloadTTL)

		render.JSON(w, r, ResponseExport{
			Token:    token,
			FileName: fileName,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}

func DownloadReportExcel(log *slog.Logger, store *exportstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate-excel.DownloadReportExcel"

		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}

		entry, ok := store.Take(token)
		if !ok {
			log.Warn("download token rejected", "op", op)
			http.Error(w, "expired or unknown token", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+entry.FileName)
		w.Write(entry.Data)
	}
}
