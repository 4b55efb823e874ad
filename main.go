package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"Metrica/internal/calc/batch"
	"Metrica/internal/calc/bmi"
	"Metrica/internal/calc/export"
	"Metrica/internal/calc/importer"
	"Metrica/internal/calc/report"
	"Metrica/internal/calc/share"
	"Metrica/internal/config"
	"Metrica/internal/middleware"
	"Metrica/internal/respond"
)

var wg sync.WaitGroup

func HandleList(ctx context.Context, router *mux.Router, cfg *config.Config) error {
	signer, err := share.NewSigner(cfg.Share.Key)
	if err != nil {
		return err
	}

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.Rate.PerSecond), cfg.Rate.Burst)
	go limiter.RunEviction(ctx, time.Minute, 10*time.Minute)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.Limit)

	bmiH := &bmi.Handler{}
	exportH := &export.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}
	shareH := &share.Handler{Signer: signer, TTL: cfg.Share.TTL}

	api.HandleFunc("/bmi/calc", bmiH.Calc).Methods("POST")
	api.HandleFunc("/bmi/export", exportH.Export).Methods("POST")
	api.HandleFunc("/bmi/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/bmi/import", importH.Import).Methods("POST")
	api.HandleFunc("/bmi/report", reportH.Generate).Methods("POST")
	api.HandleFunc("/bmi/share", shareH.Create).Methods("POST")
	api.HandleFunc("/share/{token}", shareH.Resolve).Methods("GET")

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	}).Methods("GET")

	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	if err := HandleList(ctx, router, cfg); err != nil {
		slog.Error("setup routes", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Logging(middleware.CORS(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	wg.Wait()
	slog.Info("server stopped")
}
