package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/study-teams/internal/config"
	"github.com/bagdasarian/study-teams/internal/db"
	"github.com/bagdasarian/study-teams/internal/handler"
	"github.com/bagdasarian/study-teams/internal/handler/server"
	"github.com/bagdasarian/study-teams/internal/repository/postgres"
	"github.com/bagdasarian/study-teams/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	teamRepo := postgres.NewTeamRepository(database)
	teamService := service.NewTeamService(teamRepo, service.NewGenerator())

	h := handler.NewHandler(teamService)
	srv := server.NewServer(h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
