package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mentor-scheduler/internal/audit"
	"github.com/BruksfildServices01/mentor-scheduler/internal/config"
	domain "github.com/BruksfildServices01/mentor-scheduler/internal/domain/asesoria"
	"github.com/BruksfildServices01/mentor-scheduler/internal/handlers"
	"github.com/BruksfildServices01/mentor-scheduler/internal/infra/mailer"
	infraRepo "github.com/BruksfildServices01/mentor-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/mentor-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
	ucAsesoria "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/asesoria"
	ucProgramador "github.com/BruksfildServices01/mentor-scheduler/internal/usecase/programador"
	"github.com/BruksfildServices01/mentor-scheduler/internal/validators"
)

// RegisterRoutes monta a API. A função devolvida libera os recursos de fundo.
func RegisterRoutes(ctx context.Context, r *gin.Engine, db *gorm.DB, cfg *config.Config) func() {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	asesoriaRepo := infraRepo.NewAsesoriaGormRepository(db)
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	limiter, closeLimiter := newLimiter(ctx, cfg)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAsesoriaUC := ucAsesoria.NewCreateAsesoria(asesoriaRepo, directoryRepo, auditDispatcher)
	respondAsesoriaUC := ucAsesoria.NewRespondAsesoria(asesoriaRepo, directoryRepo, newNotifier(cfg), auditDispatcher)
	listForProgramadorUC := ucAsesoria.NewListForProgramador(asesoriaRepo, directoryRepo)
	listMineUC := ucAsesoria.NewListMine(asesoriaRepo)
	scheduleUC := ucAsesoria.NewSchedule(asesoriaRepo, directoryRepo)
	statsUC := ucAsesoria.NewGetStats(asesoriaRepo, directoryRepo)

	programadorSvc := ucProgramador.NewService(
		directoryRepo,
		newAvatarStore(cfg),
		auditDispatcher,
		cfg.DefaultProgrammerPassword,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(directoryRepo, cfg, validators.IsEmailDomainValid)
	meHandler := handlers.NewMeHandler(directoryRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, directoryRepo)

	asesoriaHandler := handlers.NewAsesoriaHandler(
		createAsesoriaUC,
		respondAsesoriaUC,
		listForProgramadorUC,
		listMineUC,
		scheduleUC,
		statsUC,
	)
	programadorHandler := handlers.NewProgramadorHandler(programadorSvc, scheduleUC)
	proyectoHandler := handlers.NewProyectoHandler(programadorSvc)

	Mount(r, cfg, limiter, Handlers{
		Auth:        authHandler,
		Me:          meHandler,
		AuditLogs:   auditLogsHandler,
		Asesoria:    asesoriaHandler,
		Programador: programadorHandler,
		Proyecto:    proyectoHandler,
	})

	return func() {
		auditDispatcher.Close()
		closeLimiter()
	}
}

type Handlers struct {
	Auth        *handlers.AuthHandler
	Me          *handlers.MeHandler
	AuditLogs   *handlers.AuditLogsHandler
	Asesoria    *handlers.AsesoriaHandler
	Programador *handlers.ProgramadorHandler
	Proyecto    *handlers.ProyectoHandler
}

// Mount registra as rotas /api; separado para os testes de roteamento.
func Mount(r *gin.Engine, cfg *config.Config, limiter middleware.Limiter, h Handlers) {
	auth := middleware.AuthMiddleware(cfg)
	limited := middleware.RateLimit(limiter)
	programador := middleware.RequireRole(models.RolProgramador, models.RolAdmin)
	admin := middleware.RequireRole(models.RolAdmin)

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", limited, h.Auth.Register)
		api.POST("/auth/login", limited, h.Auth.Login)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/asesorias/publica", limited, h.Asesoria.CreatePublic)
		api.GET("/asesorias/ocupadas/:programadorId/:fecha", h.Asesoria.Occupied)

		api.GET("/programadores", h.Programador.List)
		api.GET("/programadores/:id", h.Programador.Get)
		api.GET("/programadores/:id/slots", h.Programador.Slots)
		api.GET("/programadores/:id/proyectos", h.Proyecto.ListByProgramador)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(auth)
		{
			secured.GET("/me", h.Me.GetMe)
			secured.GET("/me/audit-logs", h.AuditLogs.List)

			secured.POST("/asesorias", h.Asesoria.Create)
			secured.GET("/asesorias/mis", h.Asesoria.ListMine)

			secured.GET("/asesorias/programador", programador, h.Asesoria.ListForProgramador)
			secured.GET("/asesorias/programador/filtradas", programador, h.Asesoria.ListFiltered)
			secured.GET("/asesorias/programador/estadisticas", programador, h.Asesoria.Stats)
			secured.PUT("/asesorias/:id", programador, h.Asesoria.Respond)

			// mesma operação, rota herdada do painel do programador
			secured.GET("/programador/asesorias", programador, h.Asesoria.ListForProgramador)
			secured.PUT("/programador/asesorias/:id", programador, h.Asesoria.Respond)

			secured.POST("/programadores", admin, h.Programador.Create)
			secured.PUT("/programadores/:id", h.Programador.Update)
			secured.DELETE("/programadores/:id", admin, h.Programador.Delete)

			secured.POST("/proyectos", programador, h.Proyecto.Create)
			secured.DELETE("/proyectos/:id", programador, h.Proyecto.Delete)
		}
	}
}

// ======================================================
// 🔌 COLABORADORES OPCIONAIS
// ======================================================

func newNotifier(cfg *config.Config) domain.Notifier {
	if cfg.SMTPHost == "" {
		logger.L().Info("smtp not configured, emails go to the log")
		return mailer.NewLog()
	}
	return mailer.NewSMTP(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		Timeout:  time.Duration(cfg.SMTPTimeout) * time.Second,
	})
}

func newAvatarStore(cfg *config.Config) ucProgramador.AvatarStore {
	sc := storage.Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}
	if !sc.Enabled() {
		return nil
	}
	return storage.NewS3(sc)
}

func newLimiter(ctx context.Context, cfg *config.Config) (middleware.Limiter, func()) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if err == nil {
			return middleware.NewRedisLimiter(client, cfg.RateLimitPerMinute), func() { _ = client.Close() }
		}
		logger.L().Warn("redis unavailable, using in-memory rate limiter", zap.Error(err))
		_ = client.Close()
	}

	mem := middleware.NewMemoryLimiter(cfg.RateLimitPerMinute)
	cleanupCtx, stop := context.WithCancel(ctx)
	go mem.Cleanup(cleanupCtx, time.Minute)
	return mem, stop
}
