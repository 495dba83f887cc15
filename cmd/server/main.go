package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"trafficapi/api"
	"trafficapi/config"
	"trafficapi/internal/repository"
	"trafficapi/internal/service"
	"trafficapi/internal/util"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 初始化数据库
	db, err := repository.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := repository.CloseDB(db); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}()

	if cfg.Database.Seed {
		if _, err := repository.Seed(ctx, db); err != nil {
			log.Errorf("Failed to seed database: %v", err)
		}
	}

	// 3. 初始化服务
	services := service.NewServices(db)

	// 4. 启动HTTP服务器
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: api.SetupRouter(services),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
	}
}
