package server

import (
	"net/http"

	"jobboard/internal/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	db        *sqlx.DB
	authority *token.Authority
	storage   *storage.FileStorage
	notifier  service.Notifier
	log       *logrus.Logger
	zapLog    *zap.Logger
}

func NewServer(db *sqlx.DB, authority *token.Authority,
	fileStorage *storage.FileStorage, notifier service.Notifier,
	log *logrus.Logger, zapLog *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router:    router,
		db:        db,
		authority: authority,
		storage:   fileStorage,
		notifier:  notifier,
		log:       log,
		zapLog:    zapLog,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	userRepo := repository.NewUserRepository(s.db, s.log)
	companyRepo := repository.NewCompanyRepository(s.db, s.log)
	skillRepo := repository.NewSkillRepository(s.db, s.log)
	jobRepo := repository.NewJobRepository(s.db, s.log)
	roleRepo := repository.NewRoleRepository(s.db, s.log)
	permissionRepo := repository.NewPermissionRepository(s.db, s.log)
	resumeRepo := repository.NewResumeRepository(s.db, s.log)
	subscriberRepo := repository.NewSubscriberRepository(s.db, s.log)

	userService := service.NewUserService(userRepo, companyRepo, roleRepo, s.zapLog)
	authService := service.NewAuthService(userService, s.authority, s.zapLog)
	companyService := service.NewCompanyService(companyRepo, userRepo, s.zapLog)
	skillService := service.NewSkillService(skillRepo, subscriberRepo, s.zapLog)
	subscriberService := service.NewSubscriberService(subscriberRepo, skillRepo, s.zapLog)
	jobService := service.NewJobService(jobRepo, skillRepo, companyRepo, s.notifier, s.zapLog)
	roleService := service.NewRoleService(roleRepo, permissionRepo, s.zapLog)
	permissionService := service.NewPermissionService(permissionRepo, s.zapLog)
	resumeService := service.NewResumeService(resumeRepo, userRepo, jobRepo, companyRepo, s.notifier, s.zapLog)

	authHandler := handler.NewAuthHandler(authService, userService, s.authority, s.log)
	userHandler := handler.NewUserHandler(userService, s.log)
	companyHandler := handler.NewCompanyHandler(companyService, s.log)
	skillHandler := handler.NewSkillHandler(skillService, s.log)
	jobHandler := handler.NewJobHandler(jobService, s.log)
	roleHandler := handler.NewRoleHandler(roleService, s.log)
	permissionHandler := handler.NewPermissionHandler(permissionService, s.log)
	resumeHandler := handler.NewResumeHandler(resumeService, s.log)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService, s.log)
	fileHandler := handler.NewFileHandler(s.storage, s.log)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := s.router.Group("/api/v1")

	// Public routes: self-service auth and job browsing
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/refresh", authHandler.Refresh)
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.GetByID)
	api.GET("/companies", companyHandler.List)
	api.GET("/companies/:id", companyHandler.GetByID)

	// Authenticated routes
	authRequired := api.Group("")
	authRequired.Use(middleware.AuthMiddleware(s.authority, s.zapLog))
	{
		authRequired.POST("/auth/logout", authHandler.Logout)
		authRequired.GET("/auth/account", authHandler.Account)

		authRequired.POST("/resumes", resumeHandler.Create)
		authRequired.POST("/resumes/by-user", resumeHandler.ListByCurrentUser)

		authRequired.POST("/subscribers", subscriberHandler.Create)
		authRequired.PUT("/subscribers", subscriberHandler.Update)
		authRequired.POST("/subscribers/skills", subscriberHandler.GetByCurrentUser)

		authRequired.POST("/files", fileHandler.Upload)
		authRequired.GET("/files", fileHandler.Download)
	}

	// Admin routes gated on role permissions
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(s.authority, s.zapLog))
	admin.Use(middleware.PermissionMiddleware(userRepo, roleRepo, s.zapLog))
	{
		admin.POST("/users", userHandler.Create)
		admin.PUT("/users", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.GET("/users/:id", userHandler.GetByID)
		admin.GET("/users", userHandler.List)

		admin.POST("/companies", companyHandler.Create)
		admin.PUT("/companies", companyHandler.Update)
		admin.DELETE("/companies/:id", companyHandler.Delete)

		admin.POST("/jobs", jobHandler.Create)
		admin.PUT("/jobs", jobHandler.Update)
		admin.DELETE("/jobs/:id", jobHandler.Delete)

		admin.POST("/skills", skillHandler.Create)
		admin.PUT("/skills", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Delete)
		admin.GET("/skills/:id", skillHandler.GetByID)
		admin.GET("/skills", skillHandler.List)

		admin.POST("/roles", roleHandler.Create)
		admin.PUT("/roles", roleHandler.Update)
		admin.DELETE("/roles/:id", roleHandler.Delete)
		admin.GET("/roles/:id", roleHandler.GetByID)
		admin.GET("/roles", roleHandler.List)

		admin.POST("/permissions", permissionHandler.Create)
		admin.PUT("/permissions", permissionHandler.Update)
		admin.DELETE("/permissions/:id", permissionHandler.Delete)
		admin.GET("/permissions/:id", permissionHandler.GetByID)
		admin.GET("/permissions", permissionHandler.List)

		admin.DELETE("/subscribers/:id", subscriberHandler.Delete)

		admin.PUT("/resumes", resumeHandler.Update)
		admin.DELETE("/resumes/:id", resumeHandler.Delete)
		admin.GET("/resumes/:id", resumeHandler.GetByID)
		admin.GET("/resumes", resumeHandler.List)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
