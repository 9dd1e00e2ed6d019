package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/configs"
	"restaurant-pos/middlewares"
	"restaurant-pos/pkg/logger"
	"restaurant-pos/routes"
	"restaurant-pos/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg := logger.New("restaurant-pos", cfg.LogLevel)
	slog.SetDefault(lg)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect db: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := configs.SeedUsers(db, cfg); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}
	n, err := configs.SeedMenu(db, cfg.MenuSeedFile)
	if err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}
	if n > 0 {
		lg.Info("menu seeded", slog.Int("items", n))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board := ws.NewOrderBoard(lg)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(lg))
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, board)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return board.Run(gctx) })
	g.Go(func() error {
		lg.Info("server running", slog.String("addr", srv.Addr), slog.String("business_offset", cfg.BusinessLocation.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	lg.Info("server stopped")
}
