package main

import (
	"log"

	api "mtasks-backend/cmd/api"
	authdomain "mtasks-backend/internal/auth/domain"
	authRepo "mtasks-backend/internal/auth/repository"
	"mtasks-backend/internal/auth/token"
	authUsecase "mtasks-backend/internal/auth/usecase"
	"mtasks-backend/internal/janitor"
	listdomain "mtasks-backend/internal/list/domain"
	listRepo "mtasks-backend/internal/list/repository"
	listUsecase "mtasks-backend/internal/list/usecase"
	taskdomain "mtasks-backend/internal/task/domain"
	taskRepo "mtasks-backend/internal/task/repository"
	taskUsecase "mtasks-backend/internal/task/usecase"
	"mtasks-backend/pkg/config"
	"mtasks-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &listdomain.List{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	listRepository := listRepo.NewGormListRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authUc := authUsecase.NewAuthUsecase(userRepository, tokenService, cfg)
	listUc := listUsecase.NewListUsecase(listRepository)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, listRepository)

	// Background reclamation of orphaned lists/tasks
	j := janitor.New(db, cfg.JanitorSchedule)
	if err := j.Start(); err != nil {
		log.Fatal("Failed to start janitor:", err)
	}
	defer j.Stop()

	// Initialize HTTP handler and serve
	handler := api.NewHandler(authUc, listUc, taskUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
