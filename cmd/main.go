package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lhochwald/unterweisung/config"
	adminctrl "github.com/lhochwald/unterweisung/internal/controller/admin"
	userctrl "github.com/lhochwald/unterweisung/internal/controller/user"
	"github.com/lhochwald/unterweisung/internal/database"
	"github.com/lhochwald/unterweisung/internal/logger"
	"github.com/lhochwald/unterweisung/internal/middleware"
	"github.com/lhochwald/unterweisung/internal/model"
	"github.com/lhochwald/unterweisung/internal/repository"
	"github.com/lhochwald/unterweisung/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewParticipationRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuizService,
			service.NewCertificateService,
			service.NewExportService,
		),

		// Controllers Layer
		fx.Provide(
			userctrl.NewTrainingController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
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

	// Session state lives in a signed cookie; the browser holds the token,
	// the values round-trip through the store on every request.
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions("unterweisung", store))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./static")

	return r
}

// RegisterRoutesAndStartServer configures all routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	trainingCtrl *userctrl.TrainingController,
	adminCtrl *adminctrl.AdminController,
) {
	// Training flow
	router.GET("/", trainingCtrl.StartPage)
	router.POST("/", trainingCtrl.StartTraining)
	router.GET("/unterweisung/:nr", trainingCtrl.InstructionPage)
	router.GET("/quiz", trainingCtrl.QuizPage)
	router.POST("/quiz", trainingCtrl.SubmitQuiz)
	router.GET("/zertifikat", trainingCtrl.Certificate)

	// Admin login is open; everything else behind the gate.
	router.GET("/admin/login", adminCtrl.LoginPage)
	router.POST("/admin/login", adminCtrl.Login)
	router.GET("/admin/logout", adminCtrl.Logout)

	restricted := router.Group("/admin", middleware.AdminRequired())
	restricted.GET("", adminCtrl.Dashboard)
	restricted.GET("/export/excel", adminCtrl.ExportExcel)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Sicherheitsunterweisung server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Participation{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
