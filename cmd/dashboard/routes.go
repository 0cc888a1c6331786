package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	removeadmin "proxima-dashboard/http-server/admin/remove"
	saveadmin "proxima-dashboard/http-server/admin/save"
	upadmin "proxima-dashboard/http-server/admin/update"
	generate_excel "proxima-dashboard/http-server/generate-report/generate-excel"
	getinvoices "proxima-dashboard/http-server/invoices/get"
	removeinvoice "proxima-dashboard/http-server/invoices/remove"
	saveinvoice "proxima-dashboard/http-server/invoices/save"
	getlogs "proxima-dashboard/http-server/logs/get"
	removelog "proxima-dashboard/http-server/logs/remove"
	savelog "proxima-dashboard/http-server/logs/save"
	updatelog "proxima-dashboard/http-server/logs/update"
	getorders "proxima-dashboard/http-server/orders/get"
	removeorder "proxima-dashboard/http-server/orders/remove"
	saveorder "proxima-dashboard/http-server/orders/save"
	updateorder "proxima-dashboard/http-server/orders/update"
	getschedule "proxima-dashboard/http-server/schedule/get"
	removeschedule "proxima-dashboard/http-server/schedule/remove"
	saveschedule "proxima-dashboard/http-server/schedule/save"
	getstats "proxima-dashboard/http-server/statistics/get"
	getworkers "proxima-dashboard/http-server/workers/get"
	"proxima-dashboard/internal/config"
	"proxima-dashboard/internal/middleware/auth"
	"proxima-dashboard/internal/service/access"
	generate_excel2 "proxima-dashboard/internal/service/generate-excel"
	"proxima-dashboard/internal/service/schedule"
	"proxima-dashboard/internal/service/statistics"
	"proxima-dashboard/internal/storage/mysql"
)

const frontendDir = "./frontend-dist"

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, stats *statistics.Service, excel *generate_excel2.GenerateExcelService, planner *schedule.Service, gate *access.Gate) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/orders", getorders.GetOrders(log, storage))
	router.Get("/api/orders/{orderId}", getorders.GetOrder(log, storage))
	router.Post("/api/orders", saveorder.SaveOrder(log, storage))
	router.Put("/api/orders/{orderId}", updateorder.UpdateOrder(log, storage))

	router.Get("/api/statistics", getstats.GetStatistics(log, stats))
	router.Get("/api/statistics/excel", generate_excel.GenerateReportExcel(log, excel))

	router.Get("/api/logs", getlogs.GetLogs(log, stats))
	router.Post("/api/logs", savelog.SaveWorkLog(log, storage))
	router.Put("/api/logs/{orderId}/{logId}", updatelog.UpdateWorkLog(log, gate, storage))
	router.Delete("/api/logs/{orderId}/{logId}", removelog.DeleteWorkLog(log, gate, storage))

	router.Get("/api/invoices", getinvoices.GetInvoices(log, storage))
	router.Post("/api/invoices", saveinvoice.SaveInvoice(log, storage))

	router.Get("/api/workers/rates", getworkers.GetWorkers(log, storage))

	router.Get("/api/schedule", getschedule.GetSchedule(log, planner))
	router.Post("/api/schedule/availabilities", saveschedule.SaveAvailabilities(log, storage))
	router.Delete("/api/schedule/availabilities/{id}", removeschedule.DeleteAvailability(log, storage))
	router.Post("/api/schedule/absences", saveschedule.SaveRecurringAbsence(log, storage))
	router.Delete("/api/schedule/absences/{id}", removeschedule.DeleteRecurringAbsence(log, storage))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Put("/workers/rates", upadmin.UpdateWorkerRatesAdmin(log, storage))
	adminRouter.Delete("/invoices/{invoiceId}", removeinvoice.DeleteInvoice(log, storage))
	adminRouter.Delete("/orders/{orderId}", removeorder.DeleteOrder(log, storage))
	adminRouter.Post("/workers", saveadmin.CreateWorkerAdmin(log, storage))
	adminRouter.Delete("/workers/{name}", removeadmin.DeleteWorkerAdmin(log, storage))
	adminRouter.Put("/global-days", saveschedule.SaveGlobalDay(log, storage))
	adminRouter.Delete("/global-days/{date}", removeschedule.DeleteGlobalDay(log, storage))
	router.Mount("/api/admin", adminRouter)

	// SPA is optional, the API works without it
	if _, err := os.Stat(frontendDir); err != nil {
		log.Warn("frontend folder not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
