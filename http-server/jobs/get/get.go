package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"kitchen-golang/internal/storage"
)

type ResponseJobIndex struct {
	Jobs   []storage.JobRef `json:"jobs"`
	Status string           `json:"status"`
	Error  string           `json:"error,omitempty"`
}

type JobIndexProvider interface {
	JobIndex(ctx context.Context) ([]storage.JobRef, error)
}

// GetJobIndex serves the cached code/name index the search box
// autocompletes from.
func GetJobIndex(log *slog.Logger, provider JobIndexProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.jobs.get.GetJobIndex"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		jobs, err := provider.JobIndex(ctx)
		if err != nil {
			log.Error("failed to load job index", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseJobIndex{Error: "job index unavailable"})
			return
		}

		render.JSON(w, r, ResponseJobIndex{
			Jobs:   jobs,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
