package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	configs "coursework_service/config"
	"coursework_service/internal/repository"
	"coursework_service/internal/server/coursework_http"
	"coursework_service/internal/service"
	"coursework_service/pkg/db"
	"coursework_service/pkg/kafka"
	"coursework_service/pkg/logger"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConfig := db.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.DBName,
		SSLMode:  cfg.DB.SSLMode,
	}

	pg, err := db.NewPostgres(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	assignmentRepo := repository.NewAssignmentRepository(pg.DB())
	workRepo := repository.NewWorkRepository(pg.DB())
	spaceRepo := repository.NewSpaceRepository(pg.DB())
	studentRepo := repository.NewStudentRepository(pg.DB())
	cohortRepo := repository.NewCohortRepository(pg.DB())
	deliveryRepo := repository.NewDeliveryRepository(pg.DB())
	evaluationRepo := repository.NewEvaluationRepository(pg.DB())

	kafkaProducer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	if err != nil {
		log.Fatalf("Failed to create Kafka producer: %v", err)
	}
	defer kafkaProducer.Close()

	assignmentService := service.NewAssignmentService(
		assignmentRepo,
		workRepo,
		studentRepo,
		spaceRepo,
		deliveryRepo,
		kafkaProducer,
		log,
	)
	evaluationService := service.NewEvaluationService(
		assignmentRepo,
		evaluationRepo,
		workRepo,
	)
	rankingService := service.NewRankingService(
		cohortRepo,
		studentRepo,
		evaluationRepo,
	)
	registryService := service.NewRegistryService(
		workRepo,
		spaceRepo,
		studentRepo,
		cohortRepo,
	)

	handler := coursework_http.NewCourseworkHandler(
		assignmentService,
		evaluationService,
		rankingService,
		registryService,
		log,
	)

	router := chi.NewRouter()
	router.Use(coursework_http.NewLoggingMiddleware(log))
	handler.RegisterRoutes(router, coursework_http.NewIdentityMiddleware(log))

	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.Timeout,
		WriteTimeout: cfg.HTTP.Timeout,
	}

	worker := NewReminderWorker(assignmentRepo, kafkaProducer, log, cfg.Kafka.RemindersTopic, cfg.Kafka.ReminderWindow)
	go worker.Start(ctx)

	go func() {
		log.Infof("Starting HTTP server on %s", cfg.HTTP.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
