package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "kitchen-golang/http-server/admin/get"
	upadmin "kitchen-golang/http-server/admin/update"
	getattendance "kitchen-golang/http-server/attendance/get"
	generate_excel "kitchen-golang/http-server/generate-report/generate-excel"
	getjobs "kitchen-golang/http-server/jobs/get"
	getreport "kitchen-golang/http-server/report/get"
	"kitchen-golang/internal/config"
	"kitchen-golang/internal/middleware/auth"
	"kitchen-golang/internal/service/exportstore"
	generate_excel2 "kitchen-golang/internal/service/generate-excel"
	"kitchen-golang/internal/service/reporting"
	"kitchen-golang/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	reports *reporting.ReportService,
	genService *generate_excel2.GenerateExcelService,
	downloads *exportstore.Store,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Cost report rows + range summary
	router.Get("/api/report", getreport.GetReport(log, reports))

	// Daily workforce capacity
	router.Get("/api/attendance", getattendance.GetAttendance(log, reports))

	// Job index for the search box
	router.Get("/api/jobs", getjobs.GetJobIndex(log, reports))

	// Excel export: generate, then one-shot download
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService, reports, downloads))
	router.Get("/api/report/excel/download", generate_excel.DownloadReportExcel(log, downloads))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/coefficient", getadmin.GetCoefficientAdmin(log, storage))
	adminRouter.Put("/coefficient/update", upadmin.UpdateCoefficientAdmin(log, storage))
	adminRouter.Get("/operators", getadmin.GetOperatorsAdmin(log, reports))

	router.Mount("/api/admin", adminRouter)

	// Static Vue dashboard
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: any other path gets index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
