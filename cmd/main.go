package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/database"
	_ "github.com/hirelab/interview-trainer/docs" // Swagger docs - auto-generated
	"github.com/hirelab/interview-trainer/internal/controller"
	"github.com/hirelab/interview-trainer/internal/logger"
	"github.com/hirelab/interview-trainer/internal/model"
	"github.com/hirelab/interview-trainer/internal/repository"
	"github.com/hirelab/interview-trainer/internal/service"
	"github.com/hirelab/interview-trainer/internal/session"
)

// @title AI Interview Trainer API
// @version 1.0
// @description Interview practice API: tailored question generation, answer evaluation and progress analytics.
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			session.NewStore,
		),

		fx.Provide(
			repository.NewProfileRepository,
			repository.NewResultRepository,
			repository.NewQAHistoryRepository,
			repository.NewProgressRepository,
			repository.NewJobMarketRepository,
		),

		fx.Provide(
			service.NewGeminiLLMService,
			service.NewCVService,
			service.NewChartService,
			service.NewExportService,
			service.NewAnalyticsService,
			service.NewInterviewService,
		),

		fx.Provide(
			controller.NewInterviewController,
			controller.NewAnalyticsController,
			controller.NewJobMarketController,
			controller.NewCVController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(MigrateAndSeed),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
	analyticsCtrl *controller.AnalyticsController,
	jobMarketCtrl *controller.JobMarketController,
	cvCtrl *controller.CVController,
) {
	api := router.Group("/api/v1")
	{
		interviews := api.Group("/interviews")
		interviews.POST("", interviewCtrl.StartInterview)
		interviews.GET("/:session_id", interviewCtrl.GetSession)
		interviews.POST("/:session_id/answers", interviewCtrl.SubmitAnswer)
		interviews.POST("/:session_id/skip", interviewCtrl.SkipQuestion)
		interviews.POST("/:session_id/back", interviewCtrl.GoBack)
		interviews.POST("/:session_id/finish", interviewCtrl.FinishInterview)
		interviews.GET("/:session_id/report", interviewCtrl.DownloadReport)
		interviews.GET("/:session_id/narration", interviewCtrl.Narration)

		users := api.Group("/users")
		users.GET("/:user_id/history", analyticsCtrl.GetHistory)
		users.GET("/:user_id/analytics", analyticsCtrl.GetAnalytics)
		users.GET("/:user_id/recommendations", jobMarketCtrl.GetRecommendations)

		api.GET("/job-market", jobMarketCtrl.GetJobMarket)
		api.POST("/cv/extract", cvCtrl.ExtractCV)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview Trainer API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// MigrateAndSeed migrates the schema and seeds the job market reference table.
func MigrateAndSeed(db *gorm.DB, jobMarketRepo repository.JobMarketRepository) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.CandidateProfile{},
		&model.InterviewResult{},
		&model.QAHistoryEntry{},
		&model.UserProgress{},
		&model.JobMarketEntry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	if err := jobMarketRepo.SeedIfEmpty(); err != nil {
		log.Error().Err(err).Msg("Job market seeding failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
