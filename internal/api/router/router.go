package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/handler"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/middleware"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/realtime"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/redis"
)

// Setup builds the Gin engine: REST boundary plus the websocket
// gateway endpoint.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	gw *realtime.Gateway,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	limiter *middleware.LoginLimiter,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Realtime planning gateway. Unauthenticated: the web client
	// connects before any login state exists. Origin checks apply.
	r.GET("/ws", gw.ServeWS)

	api := r.Group("/api")
	{
		api.GET("/check-database", h.Auth.CheckDatabase)

		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)

			authorized := auth.Group("")
			authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
			{
				authorized.POST("/logout", h.Auth.Logout)
				authorized.GET("/qr/:username", h.Auth.QRPayload)
			}
		}

		mobile := api.Group("/mobile")
		{
			mobile.POST("/login", limiter.Check(), h.Mobile.Login)
			mobile.POST("/qr-login", limiter.Check(), h.Mobile.QRLogin)
			mobile.GET("/status", h.Mobile.Status)

			authorized := mobile.Group("")
			authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
			{
				authorized.GET("/cours",
					middleware.RoleAuth("enseignant", "eleve"), h.Mobile.Cours)
				authorized.GET("/enseignants",
					middleware.RoleAuth("enseignant"), h.Mobile.Enseignants)
				authorized.GET("/surveillances",
					middleware.RoleAuth("enseignant"), h.Mobile.Surveillances)
				authorized.GET("/planning/export",
					middleware.RoleAuth("enseignant"), h.Mobile.ExportPlanning)
				authorized.GET("/cours/ics",
					middleware.RoleAuth("enseignant", "eleve"), h.Mobile.CoursICS)
			}
		}
	}

	return r
}
