package service

import (
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
)

// Service aggregates every business service.
type Service struct {
	Auth         AuthService
	Reference    ReferenceService
	Uhr          UhrService
	Planning     PlanningService
	Surveillance SurveillanceService
	Annotation   AnnotationService
	Export       ExportService
}

// NewService wires the service layer.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, logger),
		Reference:    NewReferenceService(repo, logger),
		Uhr:          NewUhrService(repo, logger),
		Planning:     NewPlanningService(repo, logger),
		Surveillance: NewSurveillanceService(repo, logger),
		Annotation:   NewAnnotationService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
