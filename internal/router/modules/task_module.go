package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/container"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/helpers"
)

// TaskModule wires the bearer-guarded task CRUD routes.
type TaskModule struct {
	Handler *handlers.TaskHandler
	Tokens  *helpers.TokenManager
	Users   repo.UserRepository
}

func NewTaskModule(h *handlers.TaskHandler, tokens *helpers.TokenManager, users repo.UserRepository) *TaskModule {
	return &TaskModule{Handler: h, Tokens: tokens, Users: users}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.RequireAuth(m.Tokens, m.Users))
	tasks.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.GET("/:task_id", m.Handler.Get)
		tasks.PUT("/:task_id", m.Handler.Update)
		tasks.DELETE("/:task_id", m.Handler.Delete)
	}
}
