package main

import (
	"activityBoard/internal/backend"
	"activityBoard/internal/board"
	"activityBoard/internal/config"
	"activityBoard/internal/controller"
	"activityBoard/internal/http-server/handlers/activity/createActivity"
	"activityBoard/internal/http-server/handlers/activity/getBoard"
	"activityBoard/internal/http-server/handlers/activity/removeParticipant"
	"activityBoard/internal/http-server/handlers/activity/signup"
	"activityBoard/internal/http-server/middleware/mwlogger"
	"activityBoard/internal/http-server/static"
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/handlers/slogpretty"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/storage/memory"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting activity board", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage := memory.New(memory.Seed())
	page := board.NewPage(cfg.Board.Anchors...)
	remote := backend.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})

	ctrl := controller.New(log, storage, page, remote, controller.Config{
		MessageTTL: cfg.Board.MessageTTL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl.Start(ctx)

	router := newRouter(log, ctrl)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	cancel()
	ctrl.Drain()

	log.Info("application stopped")
}

func newRouter(log *slog.Logger, ctrl *controller.Controller) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Handle("/static/*", http.StripPrefix("/static/", static.Handler()))
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Get("/", getBoard.New(log, ctrl))
	router.Post(board.SignupPath, signup.New(log, ctrl, ctrl))
	router.Post(board.NewActivityPath, createActivity.New(log, ctrl, ctrl))
	router.Post(board.RemoveParticipantPath, removeParticipant.New(log, ctrl, ctrl))

	return router
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
