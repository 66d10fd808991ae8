package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventease/internal/api"
	"eventease/internal/config"
	"eventease/internal/logger"
	"eventease/internal/session"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.Load()

	// Инициализируем логгер
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	// Выбираем хранилище сессий: Valkey при наличии адреса, иначе память
	var store session.Store
	if cfg.Session.ValkeyAddr != "" {
		valkey, err := session.NewValkeyStore(cfg.Session)
		if err != nil {
			logger.Fatal("Failed to connect to Valkey", "error", err)
		}
		store = valkey
		log.Info("Using Valkey session store", "addr", cfg.Session.ValkeyAddr)
	} else {
		store = session.NewMemoryStore()
		log.Info("Using in-memory session store")
	}

	// Создаем и настраиваем сервер
	server := api.NewServer(cfg, store)

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.GetRouter(),
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Info("Starting server", "port", cfg.Port, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Ждем сигнал для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	// Закрываем соединения
	if err := server.Cleanup(); err != nil {
		log.Error("Error during cleanup", "error", err)
	}

	log.Info("Server stopped")
}
