package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/festa-kr/festa-api/docs"
	v1 "github.com/festa-kr/festa-api/internal/api/handler/v1"
	"github.com/festa-kr/festa-api/internal/api/middleware"
	"github.com/festa-kr/festa-api/internal/config"
	"github.com/festa-kr/festa-api/internal/repository"
	"github.com/festa-kr/festa-api/internal/repository/dao"
	"github.com/festa-kr/festa-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	festivalHandler := s.initFestivalHandler(db)
	commentHandler := s.initCommentHandler(db)
	s.MountHandlers(authHandler, userHandler, festivalHandler, commentHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initFestivalHandler(db *gorm.DB) *v1.FestivalHandler {
	festivalDAO := dao.NewFestivalDAO(db)
	repo := repository.NewFestivalRepository(festivalDAO)
	svc := service.NewFestivalService(repo)
	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewFestivalHandler(svc, userSvc)

	return handler
}

func (s *Server) initCommentHandler(db *gorm.DB) *v1.CommentHandler {
	commentDAO := dao.NewCommentDAO(db)
	festivalDAO := dao.NewFestivalDAO(db)
	festivalRepo := repository.NewFestivalRepository(festivalDAO)
	repo := repository.NewCommentRepository(commentDAO)
	svc := service.NewCommentService(repo, festivalRepo)
	handler := v1.NewCommentHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, festivalHandler *v1.FestivalHandler, commentHandler *v1.CommentHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/festivals", festivalHandler.HandleListFestivals)
		public.GET("/festivals/:festivalID", festivalHandler.HandleGetFestival)

		public.GET("/festivals/:festivalID/comments", commentHandler.HandleListComments)
		public.POST("/festivals/:festivalID/comments", commentHandler.HandleAddComment)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)

		authed.POST("/festivals", festivalHandler.HandleCreateFestival)
		authed.PUT("/festivals/:festivalID", festivalHandler.HandleUpdateFestival)
		authed.DELETE("/festivals/:festivalID", festivalHandler.HandleDeleteFestival)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Festa API"
	docs.SwaggerInfo.Description = "A catalogue of Korean regional festivals."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
