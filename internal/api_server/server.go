package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mateim4/archer-capacity-planner/internal/config"
	handlers "github.com/mateim4/archer-capacity-planner/internal/handlers/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/internal/planner"
	"github.com/mateim4/archer-capacity-planner/internal/service"
	"github.com/mateim4/archer-capacity-planner/pkg/metrics"
	"github.com/mateim4/archer-capacity-planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of a capacity planner API server.
func New(cfg *config.Config, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Service.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	capacityPlanner := planner.NewCapacityPlanner(
		planner.WithBinPacker(planner.NewBinPacker(
			planner.WithMemoryWeight(s.cfg.Planner.MemoryWeight),
		)),
		planner.WithBottleneckDetector(planner.NewBottleneckDetector(
			planner.WithWarningThreshold(s.cfg.Planner.WarningThresholdPct),
			planner.WithCriticalThreshold(s.cfg.Planner.CriticalThresholdPct),
		)),
	)

	h := handlers.NewServiceHandler(service.NewPlannerService(capacityPlanner))
	h.Routes(router)

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
