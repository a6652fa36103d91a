package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/api"
	"github.com/mvillar/fastfeet-front/internal/cache"
	"github.com/mvillar/fastfeet-front/internal/config"
	"github.com/mvillar/fastfeet-front/internal/notify"
	"github.com/mvillar/fastfeet-front/internal/service"
	"github.com/mvillar/fastfeet-front/internal/session"
	"github.com/mvillar/fastfeet-front/pgk/logger"

	httpController "github.com/mvillar/fastfeet-front/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	client, err := api.New(cfg.APIAddress, cfg.SessionCookieName, lg)
	if err != nil {
		return err
	}

	identity := session.New(client, lg)
	remote := cache.New(lg)
	center := notify.NewCenter(lg)

	s := service.New(client, identity, remote, center, cfg.CacheFreshness, lg)

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
