package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"microblog/internal/api/http/handler"
	"microblog/internal/api/http/middleware"
	"microblog/internal/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authHandler   *handler.Auth
	postHandler   *handler.Post
	healthHandler *handler.Health
	basePath      string
	logger        *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	postService handler.PostService,
	db handler.Pinger,
	basePath string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:   handler.NewAuth(authService, logger),
		postHandler:   handler.NewPost(postService, logger),
		healthHandler: handler.NewHealth(db, logger),
		basePath:      basePath,
		logger:        logger,
	}
}

// Register builds the gin engine with all routes and middleware.
// Routes live under basePath so the service can sit behind a
// path-prefixing reverse proxy.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle)
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group(r.basePath + "/api")
	{
		api.GET("", r.postHandler.List)
		api.POST("", r.postHandler.Create)
		api.DELETE("", r.postHandler.Delete)
		api.GET("/health", r.healthHandler.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/signup", r.authHandler.Signup)
		}
	}

	return engine
}
