package api

import (
	authUsecase "mtasks-backend/internal/auth/usecase"
	listUsecase "mtasks-backend/internal/list/usecase"
	taskUsecase "mtasks-backend/internal/task/usecase"
	"mtasks-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	listUsecase listUsecase.ListUsecase
	taskUsecase taskUsecase.TaskUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, listUc listUsecase.ListUsecase, taskUc taskUsecase.TaskUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		listUsecase: listUc,
		taskUsecase: taskUc,
		config:      cfg,
	}
}

// Engine builds the configured gin engine. Split out from Start so tests
// can drive it with httptest.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	SetupRoutes(r, h.authUsecase, h.listUsecase, h.taskUsecase, h.config)
	return r
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	return h.Engine().Run(addr)
}
