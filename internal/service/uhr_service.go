package service

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
)

var timeFormat = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// UhrService owns the time slots of the weekly grid.
type UhrService interface {
	ListUhrs(ctx context.Context) ([]model.Uhr, error)
	AddUhr(ctx context.Context, draft *dto.UhrDraft) (*model.Uhr, error)
	UpdateUhr(ctx context.Context, patch *dto.UhrPatch) (*model.Uhr, error)
	DeleteUhr(ctx context.Context, id string) error
}

type uhrService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUhrService creates a UhrService.
func NewUhrService(repo *repository.Repository, logger *zap.Logger) UhrService {
	return &uhrService{repo: repo, logger: logger}
}

func (s *uhrService) ListUhrs(ctx context.Context) ([]model.Uhr, error) {
	return s.repo.Uhr.List(ctx)
}

func (s *uhrService) AddUhr(ctx context.Context, draft *dto.UhrDraft) (*model.Uhr, error) {
	var missing []string
	if draft.Nummer <= 0 {
		missing = append(missing, "nummer")
	}
	if !timeFormat.MatchString(draft.Start) {
		missing = append(missing, "start")
	}
	if !timeFormat.MatchString(draft.Ende) {
		missing = append(missing, "ende")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}

	u := &model.Uhr{Nummer: draft.Nummer, Start: draft.Start, Ende: draft.Ende}
	if err := s.repo.Uhr.Create(ctx, u); err != nil {
		s.logger.Error("échec de la création du créneau", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (s *uhrService) UpdateUhr(ctx context.Context, patch *dto.UhrPatch) (*model.Uhr, error) {
	u, err := s.repo.Uhr.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, wrapNotFound(err, "uhr", patch.ID)
	}
	if patch.Nummer != nil {
		u.Nummer = *patch.Nummer
	}
	if patch.Start != nil {
		if !timeFormat.MatchString(*patch.Start) {
			return nil, apperrors.NewValidation("start")
		}
		u.Start = *patch.Start
	}
	if patch.Ende != nil {
		if !timeFormat.MatchString(*patch.Ende) {
			return nil, apperrors.NewValidation("ende")
		}
		u.Ende = *patch.Ende
	}
	if err := s.repo.Uhr.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *uhrService) DeleteUhr(ctx context.Context, id string) error {
	if _, err := s.repo.Uhr.GetByID(ctx, id); err != nil {
		return wrapNotFound(err, "uhr", id)
	}
	return s.repo.Uhr.Delete(ctx, id)
}
