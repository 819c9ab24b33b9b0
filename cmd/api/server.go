package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sewaaset-prediction/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// create the HTTP server
func (a *App) InitializeServer() {
	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      a.Config.MLTimeout() + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// start the HTTP server and block until it is shut down
func (a *App) StartServer() {
	go func() {
		logger.GlobalLogger.Printf("Starting server on %s", a.Server.Addr)
		logger.GlobalLogger.Printf("Model server: %s", a.Config.MLService.BaseURL)

		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.GlobalLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	a.shutdownServer()
}

// wait for SIGINT or SIGTERM, then drain in-flight requests
func (a *App) shutdownServer() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.GlobalLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(ctx); err != nil {
		logger.GlobalLogger.Errorf("Server forced to shutdown: %v", err)
	}

	a.cleanup()
	logger.GlobalLogger.Println("Server exited")
}
