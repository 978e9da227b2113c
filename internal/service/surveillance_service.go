package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
)

// SurveillanceService owns the supervision rows of the planning grid.
// Entries sharing a (jour, position, semaine, annee) anchor carry a
// total order in Ordre; listings come back sorted ascending.
type SurveillanceService interface {
	ListSurveillances(ctx context.Context, filter *dto.SurveillanceFilter) ([]model.Surveillance, error)
	AddSurveillance(ctx context.Context, draft *dto.SurveillanceDraft) (*model.Surveillance, error)
	UpdateSurveillance(ctx context.Context, patch *dto.SurveillancePatch) (*model.Surveillance, error)
	DeleteSurveillance(ctx context.Context, id string) error
}

type surveillanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSurveillanceService creates a SurveillanceService.
func NewSurveillanceService(repo *repository.Repository, logger *zap.Logger) SurveillanceService {
	return &surveillanceService{repo: repo, logger: logger}
}

func (s *surveillanceService) ListSurveillances(ctx context.Context, filter *dto.SurveillanceFilter) ([]model.Surveillance, error) {
	all, err := s.repo.Surveillance.List(ctx)
	if err != nil {
		s.logger.Error("échec de la lecture des surveillances", zap.Error(err))
		return nil, err
	}
	if filter == nil {
		return all, nil
	}

	result := make([]model.Surveillance, 0, len(all))
	for _, sv := range all {
		if filter.Enseignant != "" && sv.Enseignant != filter.Enseignant {
			continue
		}
		if filter.Semaine != 0 && sv.Semaine != filter.Semaine {
			continue
		}
		if filter.Annee != 0 && sv.Annee != filter.Annee {
			continue
		}
		result = append(result, sv)
	}
	return result, nil
}

func (s *surveillanceService) AddSurveillance(ctx context.Context, draft *dto.SurveillanceDraft) (*model.Surveillance, error) {
	var missing []string
	if draft.Enseignant == "" {
		missing = append(missing, "enseignant")
	}
	if draft.Lieu == "" {
		missing = append(missing, "lieu")
	}
	if draft.Jour == "" {
		missing = append(missing, "jour")
	}
	if draft.UhrID == nil && draft.Position == nil {
		missing = append(missing, "uhr ou position")
	}
	if draft.Semaine < 1 || draft.Semaine > 53 {
		missing = append(missing, "semaine")
	}
	if draft.Annee == 0 {
		missing = append(missing, "annee")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}

	position := -1
	if draft.Position != nil {
		position = *draft.Position
	}

	ordre := 0
	if draft.Ordre != nil {
		ordre = *draft.Ordre
	} else {
		max, err := s.repo.Surveillance.MaxOrdreAtPosition(ctx, draft.Jour, position, draft.Semaine, draft.Annee)
		if err != nil {
			return nil, err
		}
		ordre = max + 1
	}

	sv := &model.Surveillance{
		Enseignant: draft.Enseignant,
		Lieu:       draft.Lieu,
		Jour:       draft.Jour,
		UhrID:      draft.UhrID,
		Position:   position,
		Ordre:      ordre,
		Semaine:    draft.Semaine,
		Annee:      draft.Annee,
	}

	if err := s.repo.Surveillance.Create(ctx, sv); err != nil {
		s.logger.Error("échec de la création de la surveillance", zap.Error(err))
		return nil, err
	}

	return sv, nil
}

func (s *surveillanceService) UpdateSurveillance(ctx context.Context, patch *dto.SurveillancePatch) (*model.Surveillance, error) {
	sv, err := s.getSurveillance(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.Enseignant != nil {
		sv.Enseignant = *patch.Enseignant
	}
	if patch.Lieu != nil {
		sv.Lieu = *patch.Lieu
	}
	if patch.Jour != nil {
		sv.Jour = *patch.Jour
	}
	if patch.UhrID != nil {
		sv.UhrID = patch.UhrID
	}
	if patch.Position != nil {
		sv.Position = *patch.Position
	}
	if patch.Ordre != nil {
		sv.Ordre = *patch.Ordre
	}
	if patch.Semaine != nil {
		sv.Semaine = *patch.Semaine
	}
	if patch.Annee != nil {
		sv.Annee = *patch.Annee
	}

	if err := s.repo.Surveillance.Update(ctx, sv); err != nil {
		s.logger.Error("échec de la mise à jour de la surveillance", zap.String("id", patch.ID), zap.Error(err))
		return nil, err
	}

	return sv, nil
}

func (s *surveillanceService) DeleteSurveillance(ctx context.Context, id string) error {
	if _, err := s.getSurveillance(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Surveillance.Delete(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de la surveillance", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *surveillanceService) getSurveillance(ctx context.Context, id string) (*model.Surveillance, error) {
	if id == "" {
		return nil, apperrors.NewValidation("id")
	}
	sv, err := s.repo.Surveillance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("surveillance", id)
		}
		s.logger.Error("échec de la lecture de la surveillance", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return sv, nil
}
