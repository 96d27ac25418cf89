package router

import (
	"net/http"

	mem "med-schedule/internal/adapters/storage/memory"
	"med-schedule/internal/domain/doselog"
	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule"
	"med-schedule/internal/middleware"
	"med-schedule/internal/platform/logger"
	"med-schedule/internal/platform/metrics"

	_ "med-schedule/docs" // registra el doc de swag

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => sin /metrics ni contadores

	// Opcionales y en pareja, como los devuelve NewServices: DoseLog debe
	// estar registrado como recorder de Medicines. Si falta Medicines se arma
	// el store en memoria; si falta solo DoseLog, /history queda vacío.
	Medicines *medicines.Service
	DoseLog   *doselog.Service
}

// NewServices arma el store en memoria del proceso: la lista de tomas y su
// historial, con el historial (y métricas si vienen) escuchando cada cambio.
func NewServices(m *metrics.Metrics) (*medicines.Service, *doselog.Service) {
	logSvc := doselog.NewService(mem.NewDoseLogRepo())

	recorders := []medicines.ChangeRecorder{logSvc}
	if m != nil {
		recorders = append(recorders, m)
	}
	medsSvc := medicines.NewService(mem.NewMedicineRepo(), recorders...)
	return medsSvc, logSvc
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(opts.Logger))
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	medsSvc, logSvc := opts.Medicines, opts.DoseLog
	if medsSvc == nil {
		medsSvc, logSvc = NewServices(opts.Metrics)
	}
	if logSvc == nil {
		log := opts.Logger
		if log == nil {
			log = logger.Nop()
		}
		log.Warn("medicines service without dose log: history will stay empty", nil)
		logSvc = doselog.NewService(mem.NewDoseLogRepo())
	}

	// Rutas por módulo
	medicines.RegisterRoutes(r, medsSvc)
	schedule.RegisterRoutes(r, medsSvc)
	doselog.RegisterRoutes(r, logSvc, medsSvc)

	return r
}
