package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/config"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authSvc := service.NewAuthService(userRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo)
	statsSvc := service.NewStatsService(taskRepo)

	renderer, err := web.NewRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	srv := web.NewServer(&cfg, renderer, authSvc, categorySvc, taskSvc, statsSvc)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("[info] TaskFlow listening on %s", cfg.HTTPAddr)
	if err := srv.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
