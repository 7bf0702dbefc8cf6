package api

import (
	"net/http"

	"mtasks-backend/internal/auth/delivery"
	authUsecase "mtasks-backend/internal/auth/usecase"
	listDelivery "mtasks-backend/internal/list/delivery"
	listUsecasePkg "mtasks-backend/internal/list/usecase"
	"mtasks-backend/internal/middleware"
	taskDelivery "mtasks-backend/internal/task/delivery"
	taskUsecasePkg "mtasks-backend/internal/task/usecase"
	"mtasks-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, listUc listUsecasePkg.ListUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc)
	listHandler := listDelivery.NewListHandler(listUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes (rate limited, no token required)
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimiter(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Profile routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("/me", authHandler.Me)
			users.PUT("/me", authHandler.UpdateMe)
			users.DELETE("/me", authHandler.DeleteMe)
		}

		// List routes (protected), tasks nested under their list
		lists := api.Group("/lists")
		lists.Use(delivery.AuthMiddleware(authUc))
		{
			lists.POST("", listHandler.CreateList)
			lists.GET("", listHandler.GetLists)
			lists.GET("/:listId", listHandler.GetListByID)
			lists.PUT("/:listId", listHandler.UpdateList)
			lists.DELETE("/:listId", listHandler.DeleteList)

			lists.POST("/:listId/tasks", taskHandler.CreateTask)
			lists.GET("/:listId/tasks", taskHandler.GetTasks)
			lists.GET("/:listId/tasks/:taskId", taskHandler.GetTaskByID)
			lists.PUT("/:listId/tasks/:taskId", taskHandler.UpdateTask)
			lists.DELETE("/:listId/tasks/:taskId", taskHandler.DeleteTask)
		}
	}
}
