package routes

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Cache is what the route wiring needs from the cache backend: the
// read-through interface plus a health probe.
type Cache interface {
	usecase.Cache
	handler.Pinger
}

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  Cache
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

// Register wires repositories, usecases and handlers and mounts every route.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	cfg := r.deps.Config
	db := r.deps.DB

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	assessmentRepo := repository.NewPostgresAssessmentRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	careerPathRepo := repository.NewPostgresCareerPathRepository(db)
	recRepo := repository.NewPostgresRecommendationRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	userCourseRepo := repository.NewPostgresUserCourseRepository(db)

	var cacheBackend usecase.Cache
	if r.deps.Cache != nil {
		cacheBackend = r.deps.Cache
	}

	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	recUC := usecase.NewRecommendationUsecase(careerPathRepo, userSkillRepo, recRepo)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, profileRepo, recUC, ws.Notifier{})
	skillUC := usecase.NewSkillUsecase(skillRepo, cacheBackend)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo, skillRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo, userCourseRepo, userSkillRepo, cacheBackend)

	healthHandler := handler.NewHealthHandler(db, r.deps.Cache)
	healthHandler.RegisterRoutes(app)

	wsHandler := ws.NewHandler(r.deps.Hub, jwtSvc, r.deps.Logger)
	app.Get("/ws/recommendations", wsHandler.HandleRecommendationsWS)

	api := app.Group("/api")

	authHandler := handler.NewAuthHandler(authUC)
	authGroup := api.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// The skill catalog is readable without a session so the onboarding
	// skill picker can load before login.
	handler.NewSkillHandler(skillUC).RegisterRoutes(api)

	protected := api.Group("", authMw.Middleware())
	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

	handler.NewProfileHandler(profileUC).RegisterRoutes(protected)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(protected)
	handler.NewUserSkillHandler(userSkillUC).RegisterRoutes(protected)
	handler.NewRecommendationHandler(recUC).RegisterRoutes(protected)
	handler.NewCourseHandler(courseUC).RegisterRoutes(protected)
}
