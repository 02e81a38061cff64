package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vidaplus/clinic-api/internal/config"
	"github.com/vidaplus/clinic-api/internal/handler"
	appointmentHandler "github.com/vidaplus/clinic-api/internal/handler/appointment"
	authHandler "github.com/vidaplus/clinic-api/internal/handler/auth"
	doctorHandler "github.com/vidaplus/clinic-api/internal/handler/doctor"
	patientHandler "github.com/vidaplus/clinic-api/internal/handler/patient"
	"github.com/vidaplus/clinic-api/internal/middleware"
	"github.com/vidaplus/clinic-api/internal/repository/postgres"
	"github.com/vidaplus/clinic-api/internal/router"
	appointmentService "github.com/vidaplus/clinic-api/internal/service/appointment"
	authService "github.com/vidaplus/clinic-api/internal/service/auth"
	doctorService "github.com/vidaplus/clinic-api/internal/service/doctor"
	patientService "github.com/vidaplus/clinic-api/internal/service/patient"
	"github.com/vidaplus/clinic-api/pkg/auth"
	"github.com/vidaplus/clinic-api/pkg/logger"
	"github.com/vidaplus/clinic-api/pkg/security"
)

func main() {
	logg := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		logg.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		logg.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	// Services
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenExpiry())
	authSvc := authService.NewService(patientRepo, jwtSvc, hasher)
	patientSvc := patientService.NewService(patientRepo, hasher)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, patientRepo)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler(db)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		h,
		router.Config{CORSConfig: corsConfig},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logg.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatal(err, "server forced to shutdown")
	}

	logg.Info("server exited properly")
}
