package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mateim4/archer-capacity-planner/internal/config"
	"github.com/mateim4/archer-capacity-planner/pkg/metrics"
)

// MetricServer serves the prometheus scrape endpoint on its own listener
// so that operational traffic stays off the API port.
type MetricServer struct {
	cfg      *config.Config
	listener net.Listener
}

func NewMetricServer(cfg *config.Config, listener net.Listener) *MetricServer {
	return &MetricServer{
		cfg:      cfg,
		listener: listener,
	}
}

func (m *MetricServer) Run(ctx context.Context) error {
	zap.S().Named("metrics_server").Info("Initializing metrics server")

	router := chi.NewRouter()
	router.Handle("/metrics", metrics.Handler())

	srv := http.Server{Addr: m.cfg.Service.MetricsAddress, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("metrics_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("metrics_server").Info("metrics server terminated")
	}()

	zap.S().Named("metrics_server").Infof("Listening on %s...", m.listener.Addr().String())
	if err := srv.Serve(m.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
