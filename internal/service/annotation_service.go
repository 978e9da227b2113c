package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/calendar"
)

// AnnotationService owns the free-text day notes of the grid.
type AnnotationService interface {
	// GetAnnotations returns the week's notes keyed by canonical day.
	GetAnnotations(ctx context.Context, semaine, annee int) (map[string]string, error)
	// SaveAnnotation upserts one note and returns the full updated
	// week map so clients resync in a single round trip. An empty
	// text is stored, not deleted.
	SaveAnnotation(ctx context.Context, req *dto.AnnotationSave) (map[string]string, error)
}

type annotationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnotationService creates an AnnotationService.
func NewAnnotationService(repo *repository.Repository, logger *zap.Logger) AnnotationService {
	return &annotationService{repo: repo, logger: logger}
}

func (s *annotationService) GetAnnotations(ctx context.Context, semaine, annee int) (map[string]string, error) {
	list, err := s.repo.Annotation.ListByWeek(ctx, semaine, annee)
	if err != nil {
		s.logger.Error("échec de la lecture des annotations", zap.Error(err))
		return nil, err
	}

	notes := make(map[string]string, len(list))
	for _, a := range list {
		notes[a.Jour] = a.Texte
	}
	return notes, nil
}

func (s *annotationService) SaveAnnotation(ctx context.Context, req *dto.AnnotationSave) (map[string]string, error) {
	var missing []string
	if !calendar.IsCanonical(req.Jour) {
		missing = append(missing, "jour")
	}
	if req.Semaine < 1 || req.Semaine > 53 {
		missing = append(missing, "semaine")
	}
	if req.Annee == 0 {
		missing = append(missing, "annee")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}

	a := &model.Annotation{
		Jour:    req.Jour,
		Semaine: req.Semaine,
		Annee:   req.Annee,
		Texte:   req.Texte,
	}
	if err := s.repo.Annotation.Upsert(ctx, a); err != nil {
		s.logger.Error("échec de l'enregistrement de l'annotation",
			zap.String("jour", req.Jour),
			zap.Int("semaine", req.Semaine),
			zap.Error(err),
		)
		return nil, err
	}

	return s.GetAnnotations(ctx, req.Semaine, req.Annee)
}
