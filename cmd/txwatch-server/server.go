package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/events"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/transport"
)

// serve runs the gRPC health server and the HTTP API until ctx is done.
func serve(ctx context.Context, cfg config, svc transport.Service, bus *events.Bus, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	health := transport.RegisterHealth(grpcServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("Starting gRPC server", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(socket); err != nil {
			errCh <- fmt.Errorf("serve grpc: %w", err)
		}
	}()

	conn, err := grpc.NewClient(dialTarget(cfg.GRPCAddr), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		grpcServer.Stop()
		return fmt.Errorf("dial grpc: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	mux := http.NewServeMux()
	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	mux.Handle("/healthz", gw)
	mux.Handle("/metrics", promhttp.Handler())
	transport.NewHandler(svc, bus, logger).Register(mux)

	s := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: cors.New(cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}).Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	health.Shutdown()

	logger.Info("Shutting down the http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Failed to shutdown http server", zap.Error(shutdownErr))
	}

	logger.Info("Shutting down gRPC server")
	grpcServer.GracefulStop()
	return err
}

// dialTarget turns a listen address such as ":8000" into a dialable one.
func dialTarget(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
