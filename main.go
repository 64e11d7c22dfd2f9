package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkingo/config"
	"checkingo/handlers"
	"checkingo/routes"
	"checkingo/services/intake"
	ai "checkingo/services/intelligence"
	"checkingo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// services.
	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	advisor := ai.NewDefaultAdvisorService(geminiClient)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessions := intake.NewSessionStore(sessionTTL)
	history := intake.NewMemoryLeadStore()

	wizardService := &intake.DefaultWizardService{
		Sessions:       sessions,
		History:        history,
		Advisor:        advisor,
		Passphrase:     config.AppConfig.AgentPassphrase,
		AgencyWhatsApp: config.AppConfig.AgencyWhatsApp,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	agentHandler := handlers.NewAgentHandler(wizardService, logger)

	// Register routes.
	routes.RegisterRoutes(router, wizardHandler, agentHandler)

	// Background workers.
	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	sessions.StartJanitor(janitorCtx)
	utils.StartHealthMonitor(sessions.Len, history.Len, config.AppConfig.GeminiAPIKey != "")

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
