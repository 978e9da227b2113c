package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/redis"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/response"
)

// AuthHandler serves the web authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService, rdb *redis.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, rdb: rdb, logger: logger}
}

// Login authenticates a web user.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email et mot de passe requis")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			response.Unauthorized(c, "email ou mot de passe incorrect")
			return
		}
		h.logger.Error("échec de la connexion", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Register creates a web account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email et mot de passe requis")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("échec de l'inscription", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Logout revokes the presented token until its natural expiry. Without
// redis the revocation degrades to a no-op and the token simply ages
// out.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claimsValue, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, "authentification requise")
		return
	}
	claims := claimsValue.(*jwt.Claims)

	if h.rdb != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := h.rdb.BlacklistToken(c.Request.Context(), claims.ID, ttl); err != nil {
			h.logger.Warn("échec de la révocation du token", zap.Error(err))
		}
	}

	response.OK(c, response.Message{Message: "déconnecté"})
}

// CheckDatabase reports whether any user exists, so the web client
// can route to the initial-setup screen.
// GET /api/check-database
func (h *AuthHandler) CheckDatabase(c *gin.Context) {
	result, err := h.authSvc.CheckDatabase(c.Request.Context())
	if err != nil {
		h.logger.Error("échec de la vérification de la base", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// QRPayload returns the encrypted QR login payload for a static
// mobile account.
// GET /api/auth/qr/:username
func (h *AuthHandler) QRPayload(c *gin.Context) {
	encrypted, err := h.authSvc.GenerateQRPayload(c.Param("username"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, err.Error())
			return
		}
		h.logger.Error("échec de la génération du QR", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"data": encrypted})
}
