package handler

import (
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/middleware"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/redis"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth   *AuthHandler
	Mobile *MobileHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service, rdb *redis.Client, limiter *middleware.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth, rdb, logger),
		Mobile: NewMobileHandler(svc, limiter, logger),
	}
}
