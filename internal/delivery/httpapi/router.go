package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Handler      *Handler
	Logger       *zap.Logger
	BasePath     string
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(CORS(cfg.AllowOrigins))

	root := r.Group(cfg.BasePath)
	{
		root.GET("/", cfg.Handler.Index)
		root.GET("/healthz", cfg.Handler.HealthCheck)
	}

	api := root.Group("/api")
	{
		api.GET("/quiz", cfg.Handler.GetQuiz)
		api.GET("/terms", cfg.Handler.GetTerms)
	}

	return r
}
