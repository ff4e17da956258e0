package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/api/handler"
	"github.com/mathquest/platform/internal/api/middleware"
	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/service"
	"github.com/mathquest/platform/internal/infrastructure/db/mysql"
	redisdb "github.com/mathquest/platform/internal/infrastructure/db/redis"
	"github.com/mathquest/platform/internal/pkg/token"
)

// publicPaths need no bearer token: probes, metrics and login. Registration
// is NOT listed: the authenticator still runs there so an admin token can
// attach a principal, while anonymous callers pass through unauthenticated.
var publicPaths = []string{"/health", "/metrics", "/auth/login"}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, codec *token.Codec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"https://*.mathquest.app",
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType,
			echo.HeaderAccept, echo.HeaderAuthorization,
		},
		MaxAge: 3600,
	}))
	e.Use(echoprometheus.NewMiddleware("mathquest"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Repositories ---
	userRepo := mysql.NewUserRepository(db)
	classroomRepo := mysql.NewClassroomRepository(db)
	lessonRepo := mysql.NewLessonRepository(db)
	activityRepo := mysql.NewActivityRepository(db)
	gameRepo := mysql.NewGameRepository(db)
	feedbackRepo := mysql.NewFeedbackRepository(db)
	revoker := redisdb.NewRevoker(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec, revoker, log)
	userService := service.NewUserService(userRepo, log)
	classroomService := service.NewClassroomService(classroomRepo, log)
	lessonService := service.NewLessonService(lessonRepo, classroomRepo, log)
	activityService := service.NewActivityService(activityRepo, lessonRepo, classroomRepo, log)
	gameService := service.NewGameService(gameRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, activityRepo, log)
	reportService := service.NewReportService(classroomRepo, lessonRepo, activityRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)
	classroomHandler := handler.NewClassroomHandler(classroomService, log)
	lessonHandler := handler.NewLessonHandler(lessonService, log)
	activityHandler := handler.NewActivityHandler(activityService, log)
	gameHandler := handler.NewGameHandler(gameService, log)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, log)
	reportHandler := handler.NewReportHandler(reportService, log)

	// The authenticator runs everywhere except the public paths; it attaches
	// a principal when the token checks out and stays silent otherwise.
	// Route-level policy decides between 401 and 403.
	e.Use(middleware.Authenticate(
		codec,
		authService,
		revoker,
		middleware.PublicPathSkipper(publicPaths...),
		log,
	))

	requireAuth := middleware.RequireAuth()
	staffOnly := middleware.RequireRoles(domain.RoleTeacher, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	studentsOnly := middleware.RequireRoles(domain.RoleStudent)

	// --- Health probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	// --- Auth ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, requireAuth)
	auth.POST("/change-password", authHandler.ChangePassword, requireAuth)

	// --- Users ---
	users := e.Group("/users", requireAuth)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate, adminOnly)

	// --- Classrooms ---
	classrooms := e.Group("/classrooms", requireAuth)
	classrooms.POST("", classroomHandler.Create, staffOnly)
	classrooms.GET("", classroomHandler.List)
	classrooms.POST("/join", classroomHandler.Join, studentsOnly)
	classrooms.GET("/:id", classroomHandler.Get)
	classrooms.PUT("/:id", classroomHandler.Update, staffOnly)
	classrooms.DELETE("/:id", classroomHandler.Delete, staffOnly)
	classrooms.GET("/:id/roster", classroomHandler.Roster, staffOnly)
	classrooms.GET("/:id/lessons", lessonHandler.ListByClassroom)
	classrooms.GET("/:id/report", reportHandler.ClassroomSummary, staffOnly)

	// --- Lessons and content blocks ---
	lessons := e.Group("/lessons", requireAuth)
	lessons.POST("", lessonHandler.Create, staffOnly)
	lessons.GET("/:id", lessonHandler.Get)
	lessons.PUT("/:id", lessonHandler.Update, staffOnly)
	lessons.DELETE("/:id", lessonHandler.Delete, staffOnly)
	lessons.POST("/:id/blocks", lessonHandler.AddBlock, staffOnly)
	lessons.PUT("/:id/blocks/reorder", lessonHandler.ReorderBlocks, staffOnly)
	lessons.GET("/:id/activities", activityHandler.ListByLesson)

	blocks := e.Group("/blocks", requireAuth, staffOnly)
	blocks.PUT("/:blockId", lessonHandler.UpdateBlock)
	blocks.DELETE("/:blockId", lessonHandler.DeleteBlock)

	// --- Activities and submissions ---
	activities := e.Group("/activities", requireAuth)
	activities.POST("", activityHandler.Create, staffOnly)
	activities.GET("/:id", activityHandler.Get)
	activities.PUT("/:id", activityHandler.Update, staffOnly)
	activities.DELETE("/:id", activityHandler.Delete, staffOnly)
	activities.POST("/:id/submissions", activityHandler.Submit, studentsOnly)
	activities.GET("/:id/submissions", activityHandler.ListSubmissions, staffOnly)
	activities.GET("/:id/feedback", feedbackHandler.ListByActivity)

	// --- Games ---
	games := e.Group("/games", requireAuth)
	games.POST("", gameHandler.Create, staffOnly)
	games.GET("", gameHandler.List)
	games.GET("/:id", gameHandler.Get)
	games.PUT("/:id", gameHandler.Update, staffOnly)
	games.DELETE("/:id", gameHandler.Delete, staffOnly)

	// --- Feedback ---
	feedback := e.Group("/feedback", requireAuth)
	feedback.POST("", feedbackHandler.Create, studentsOnly)
	feedback.DELETE("/:id", feedbackHandler.Delete, adminOnly)

	return e
}
