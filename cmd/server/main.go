package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	httpAdapter "github.com/syedmaroof/portfolio-api/adapters/http"
	"github.com/syedmaroof/portfolio-api/adapters/media_storage"
	"github.com/syedmaroof/portfolio-api/adapters/persistence"
	authUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/auth"
	backupUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/backup"
	blogUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/blog"
	certificationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/certification"
	contactUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/contact"
	educationUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/experience"
	portfolioUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/project"
	quoteUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/quote"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	skillUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/skill"
	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
	"github.com/syedmaroof/portfolio-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, cfg.App.Name)
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			appLogger.Error("tracer shutdown failed", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool, appLogger)
	quoteRepo := persistence.NewPostgresQuoteRepo(dbPool)
	contactRepo := persistence.NewPostgresContactRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	sectionCache := persistence.NewRedisSectionCache(redisClient, cfg.Cache.SectionTTL, appLogger)
	rateLimiter := persistence.NewRedisRateLimiter(redisClient, appLogger)
	denylist := persistence.NewRedisTokenDenylist(redisClient)
	notifier := sections.NewNotifier(sectionCache, kafkaClient, appLogger)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, sectionCache, notifier, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, sectionCache, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, sectionCache, notifier, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, sectionCache, notifier, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, sectionCache, notifier, appLogger)
	certificationUseCase := certificationUC.NewCertificationUseCase(certificationRepo, sectionCache, notifier, appLogger)
	listPublicPostsUseCase := blogUC.NewListPublicPostsUseCase(blogRepo, sectionCache, appLogger)
	quoteUseCase := quoteUC.NewQuoteUseCase(quoteRepo, notifier, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger),
			authUC.NewLogoutUseCase(denylist, appLogger),
			authUC.NewSessionUseCase(userRepo),
			appLogger,
		),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(
			projectUC.NewCreateProjectUseCase(projectRepo, notifier, appLogger),
			projectUC.NewUpdateProjectUseCase(projectRepo, notifier, appLogger),
			projectUC.NewDeleteProjectUseCase(projectRepo, uploader, notifier, appLogger),
			projectUC.NewGetProjectUseCase(projectRepo),
			listProjectsUseCase,
			projectUC.NewReorderProjectsUseCase(projectRepo, notifier),
			projectUC.NewUploadProjectImageUseCase(projectRepo, uploader, notifier, appLogger),
			appLogger,
		),
		Skill:         httpAdapter.NewSkillHandler(skillUseCase),
		Education:     httpAdapter.NewEducationHandler(educationUseCase),
		Experience:    httpAdapter.NewExperienceHandler(experienceUseCase),
		Certification: httpAdapter.NewCertificationHandler(certificationUseCase),
		Blog: httpAdapter.NewBlogHandler(httpAdapter.BlogUseCases{
			Create:      blogUC.NewCreatePostUseCase(blogRepo, notifier, appLogger),
			Update:      blogUC.NewUpdatePostUseCase(blogRepo, notifier, appLogger),
			Delete:      blogUC.NewDeletePostUseCase(blogRepo, uploader, notifier, appLogger),
			Get:         blogUC.NewGetPostUseCase(blogRepo),
			GetPublic:   blogUC.NewGetPublicPostUseCase(blogRepo),
			List:        blogUC.NewListPostsUseCase(blogRepo),
			ListPublic:  listPublicPostsUseCase,
			UploadCover: blogUC.NewUploadCoverUseCase(blogRepo, uploader, notifier, appLogger),
			RSS:         blogUC.NewRSSUseCase(blogRepo, profileRepo, cfg.App.SiteURL, appLogger),
		}, appLogger),
		Quote:   httpAdapter.NewQuoteHandler(quoteUseCase),
		Contact: httpAdapter.NewContactHandler(contactUC.NewContactUseCase(contactRepo, kafkaClient, appLogger)),
		Portfolio: httpAdapter.NewPortfolioHandler(portfolioUC.NewGetPortfolioUseCase(portfolioUC.Sources{
			Profiles:       profileUseCase,
			Projects:       listProjectsUseCase,
			Skills:         skillUseCase,
			Education:      educationUseCase,
			Experience:     experienceUseCase,
			Certifications: certificationUseCase,
			Posts:          listPublicPostsUseCase,
			Quotes:         quoteUseCase,
		})),
		Backup: httpAdapter.NewBackupHandler(backupUC.NewBackupUseCase(cfg.DB.DSN, backupUC.PgDump, uploader, appLogger)),
	}

	// Middleware
	middlewares := httpAdapter.Middlewares{
		Auth:         httpAdapter.AuthMiddleware(jwtSvc, denylist, appLogger),
		Error:        httpAdapter.ErrorMiddleware(appLogger),
		RequestLog:   httpAdapter.RequestLogger(appLogger),
		LoginLimit:   httpAdapter.RateLimitMiddleware(rateLimiter, "login", cfg.RateLimit.LoginPerMinute, time.Minute),
		ContactLimit: httpAdapter.RateLimitMiddleware(rateLimiter, "contact", cfg.RateLimit.ContactPerHour, time.Hour),
	}

	router, err := httpAdapter.NewRouter(handlers, middlewares, cfg.HTTP.TrustedProxies)
	if err != nil {
		appLogger.Fatal("Failed to build router", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           otelhttp.NewHandler(corsHandler, "portfolio-api"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
