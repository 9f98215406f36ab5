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

	"gym-admin/internal/api"
	"gym-admin/internal/auth"
	"gym-admin/internal/config"
	"gym-admin/internal/repository/file"
	"gym-admin/internal/service"
	"gym-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Admin Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Document Store ---
	store, err := file.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database file: %v", err)
	}
	log.Printf("Database file ready at %s", store.Path())

	// --- Session Issuer ---
	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.Expiration)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := file.NewUserRepository(store)
	memberRepo := file.NewMemberRepository(store)
	classRepo := file.NewClassRepository(store)
	trainerRepo := file.NewTrainerRepository(store)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, tokens)
	memberService := service.NewMemberService(memberRepo)
	classService := service.NewClassService(classRepo)
	trainerService := service.NewTrainerService(trainerRepo)
	analyticsService := service.NewAnalyticsService(store)

	// --- Optional Snapshot Backups ---
	var backupService service.BackupService
	if cfg.S3.Enabled() {
		log.Println("Initializing S3 snapshot storage...")
		snapshotStorage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		backupService = service.NewBackupService(store, snapshotStorage)
	} else {
		log.Println("No S3 bucket configured; snapshot backups disabled.")
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, tokens, authService, memberService, classService, trainerService, analyticsService, backupService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// In-flight requests get five seconds to finish; any write that already
	// started either fully completes or fully fails before exit.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
