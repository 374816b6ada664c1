package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"kitchen-golang/internal/storage"
)

type UpdateCoefProvider interface {
	UpdateLaborCoefficients(ctx context.Context, coeffs []storage.LaborCoefficient) error
}

func UpdateCoefficientAdmin(log *slog.Logger, update UpdateCoefProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.update.UpdateCoefficientAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var coeffs []storage.LaborCoefficient
		if err := json.NewDecoder(r.Body).Decode(&coeffs); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateLaborCoefficients(ctx, coeffs); err != nil {
			log.Error("failed to update coefficients", "op", op, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
