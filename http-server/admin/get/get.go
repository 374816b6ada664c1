package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/storage"
)

type ResponseCoefficients struct {
	Coefficients []*storage.LaborCoefficient `json:"coefficients"`
	Status       string                      `json:"status"`
	Error        string                      `json:"error,omitempty"`
}

type ResponseOperators struct {
	Operators []string `json:"operators"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
}

type CoefProvider interface {
	GetLaborCoefficients(ctx context.Context) ([]*storage.LaborCoefficient, error)
}

type OperatorsProvider interface {
	ListOperators(ctx context.Context, r daterange.Range) ([]string, error)
}

func GetCoefficientAdmin(log *slog.Logger, provider CoefProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.get.GetCoefficientAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		coeffs, err := provider.GetLaborCoefficients(ctx)
		if err != nil {
			log.Error("failed to load coefficients", "op", op, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseCoefficients{Error: "coefficients unavailable"})
			return
		}

		render.JSON(w, r, ResponseCoefficients{
			Coefficients: coeffs,
			Status:       strconv.Itoa(http.StatusOK),
		})
	}
}

// GetOperatorsAdmin lists the distinct production operators seen in a
// range, for checking what the roster extraction resolves names to.
func GetOperatorsAdmin(log *slog.Logger, provider OperatorsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.get.GetOperatorsAdmin"

		rng, err := daterange.Make(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			http.Error(w, "invalid date range", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		names, err := provider.ListOperators(ctx, rng)
		if err != nil {
			log.Error("failed to list operators", "op", op, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseOperators{Error: "operators unavailable"})
			return
		}

		render.JSON(w, r, ResponseOperators{
			Operators: names,
			Status:    strconv.Itoa(http.StatusOK),
		})
	}
}
