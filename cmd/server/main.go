package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/config"
	"github.com/campushq/college-portal-api/internal/handler"
	"github.com/campushq/college-portal-api/internal/mailer"
	"github.com/campushq/college-portal-api/internal/repository"
	"github.com/campushq/college-portal-api/internal/server"
	"github.com/campushq/college-portal-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	indexCtx, cancelIndex := context.WithTimeout(ctx, 30*time.Second)
	defer cancelIndex()

	userRepo := repository.NewUserMongoRepository(indexCtx, &logger, db)
	paperRepo := repository.NewPaperMongoRepository(indexCtx, &logger, db)
	timetableRepo := repository.NewTimetableMongoRepository(indexCtx, &logger, db)
	marksRepo := repository.NewMarksMongoRepository(db)
	attendanceRepo := repository.NewAttendanceMongoRepository(db)
	noteRepo := repository.NewNoteMongoRepository(db)
	notificationRepo := repository.NewNotificationMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.TokenIssuer)
	cookies := auth.NewCookieManager(cfg.IsProduction())
	smtpMailer := mailer.NewMailerFromEnv(&logger)
	if smtpMailer == nil {
		logger.Info().Msg("smtp not configured, notification emails disabled")
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, cfg, &logger)
	approvalUsecase := usecase.NewApprovalUsecase(userRepo)
	academicUsecase := usecase.NewAcademicUsecase(paperRepo, marksRepo, attendanceRepo, noteRepo, timetableRepo)
	notificationUsecase := usecase.NewNotificationUsecase(notificationRepo, userRepo, smtpMailer, &logger)

	srv := server.New(cfg, &logger, server.Handlers{
		Auth:    handler.NewAuthHandler(authUsecase, cookies, &logger),
		Teacher: handler.NewTeacherHandler(academicUsecase),
		Student: handler.NewStudentHandler(academicUsecase, notificationUsecase),
		HOD:     handler.NewHODHandler(approvalUsecase, academicUsecase, notificationUsecase),
		Gate:    handler.NewRoleGate(jwtAuth, cookies),
	})

	if err := srv.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server error")
	}
}
