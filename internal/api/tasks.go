package api

import (
	"net/http"

	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type taskRoutes struct {
	ts service.TaskServiceI
	a  *auth.AdminAuth
}

func NewTaskRoutes(handler *gin.RouterGroup, ts service.TaskServiceI, a *auth.AdminAuth) {
	r := &taskRoutes{ts: ts, a: a}
	h := handler.Group("/tasks")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListTasks)
	}
}

func (r *taskRoutes) ListTasks(c *gin.Context) {
	log := logger.Logger()

	tasks, err := r.ts.ListTasks(c.Request.Context())
	if err != nil {
		log.Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	out := make([]*taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResponse(t)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": out})
}
