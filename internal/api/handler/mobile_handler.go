package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/middleware"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/calendar"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/response"
)

// MobileHandler serves the companion mobile app: login with static
// accounts, read-only planning queries and file exports.
type MobileHandler struct {
	svc     *service.Service
	limiter *middleware.LoginLimiter
	logger  *zap.Logger
	started time.Time
}

// NewMobileHandler creates a MobileHandler.
func NewMobileHandler(svc *service.Service, limiter *middleware.LoginLimiter, logger *zap.Logger) *MobileHandler {
	return &MobileHandler{svc: svc, limiter: limiter, logger: logger, started: time.Now()}
}

// Login authenticates a static mobile account. Failures feed the
// per-IP limiter; a success clears it.
// POST /api/mobile/login
func (h *MobileHandler) Login(c *gin.Context) {
	var req dto.MobileLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "identifiant et mot de passe requis")
		return
	}

	result, err := h.svc.Auth.MobileLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			h.limiter.Fail(c.ClientIP())
			response.Unauthorized(c, "identifiants invalides")
			return
		}
		h.logger.Error("échec de la connexion mobile", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.limiter.Reset(c.ClientIP())
	response.OK(c, result)
}

// QRLogin authenticates from a scanned QR payload.
// POST /api/mobile/qr-login
func (h *MobileHandler) QRLogin(c *gin.Context) {
	var req dto.QRLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "données QR requises")
		return
	}

	result, err := h.svc.Auth.QRLogin(c.Request.Context(), req.Data)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			h.limiter.Fail(c.ClientIP())
			response.Unauthorized(c, "QR code invalide")
			return
		}
		h.logger.Error("échec de la connexion QR", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.limiter.Reset(c.ClientIP())
	response.OK(c, result)
}

// Cours lists courses, optionally filtered by week, class or teacher.
// GET /api/mobile/cours?semaine=&annee=&classe=&enseignant=
func (h *MobileHandler) Cours(c *gin.Context) {
	filter := &dto.CoursFilter{
		Classe:       c.Query("classe"),
		EnseignantID: c.Query("enseignant"),
		Semaine:      queryInt(c, "semaine"),
		Annee:        queryInt(c, "annee"),
	}

	list, err := h.svc.Planning.ListCours(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("échec de la lecture des cours", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Enseignants lists the teachers.
// GET /api/mobile/enseignants
func (h *MobileHandler) Enseignants(c *gin.Context) {
	list, err := h.svc.Reference.ListEnseignants(c.Request.Context())
	if err != nil {
		h.logger.Error("échec de la lecture des enseignants", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Surveillances lists supervision entries, optionally filtered.
// GET /api/mobile/surveillances?enseignant=&semaine=&annee=
func (h *MobileHandler) Surveillances(c *gin.Context) {
	filter := &dto.SurveillanceFilter{
		Enseignant: c.Query("enseignant"),
		Semaine:    queryInt(c, "semaine"),
		Annee:      queryInt(c, "annee"),
	}

	list, err := h.svc.Surveillance.ListSurveillances(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("échec de la lecture des surveillances", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Status reports liveness for the mobile connection screen.
// GET /api/mobile/status
func (h *MobileHandler) Status(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "ok",
		"uptime": int(time.Since(h.started).Seconds()),
	})
}

// ExportPlanning streams one planning week as an xlsx workbook.
// GET /api/mobile/planning/export?semaine=&annee=
func (h *MobileHandler) ExportPlanning(c *gin.Context) {
	semaine := queryInt(c, "semaine")
	annee := queryInt(c, "annee")
	if semaine == 0 || annee == 0 {
		now := time.Now()
		if semaine == 0 {
			semaine = calendar.WeekNumber(now)
		}
		if annee == 0 {
			_, annee = calendar.WeekYear(now)
		}
	}

	data, err := h.svc.Export.ExportWeekXLSX(c.Request.Context(), semaine, annee)
	if err != nil {
		if apperrors.IsValidation(err) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("échec de l'export du planning", zap.Error(err))
		response.InternalError(c)
		return
	}

	filename := fmt.Sprintf("planning-semaine-%d-%d.xlsx", semaine, annee)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// CoursICS streams one teacher's week as an iCalendar feed.
// GET /api/mobile/cours/ics?enseignant=&semaine=&annee=
func (h *MobileHandler) CoursICS(c *gin.Context) {
	enseignantID := c.Query("enseignant")
	if enseignantID == "" {
		response.BadRequest(c, "champs requis manquants: enseignant")
		return
	}
	semaine := queryInt(c, "semaine")
	annee := queryInt(c, "annee")
	if semaine == 0 {
		semaine = calendar.WeekNumber(time.Now())
	}
	if annee == 0 {
		_, annee = calendar.WeekYear(time.Now())
	}

	feed, err := h.svc.Export.TeacherICS(c.Request.Context(), enseignantID, semaine, annee)
	if err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, err.Error())
			return
		}
		h.logger.Error("échec de l'export iCalendar", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cours.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}
