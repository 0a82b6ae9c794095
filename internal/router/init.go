package router

import (
	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/container"
	"github.com/taskhive/taskhive/internal/infrastructure/mongodb"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/router/modules"
)

// InitModules builds the repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongoDatabase()

	userRepo := mongodb.NewUserRepository(db, cfg.UserCollection)
	taskRepo := mongodb.NewTaskRepository(db, cfg.TaskCollection)

	authSvc := application.NewAuthService(userRepo, container.GetTokens(), logger)
	taskSvc := application.NewTaskService(taskRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), container.GetTokens(), userRepo))
}
