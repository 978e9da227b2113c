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

// ReferenceService owns the static reference data: teachers, classes,
// rooms and subjects. Pure CRUD, consumed by the planning core for
// lookups and availability checks.
type ReferenceService interface {
	ListEnseignants(ctx context.Context) ([]model.Enseignant, error)
	AddEnseignant(ctx context.Context, draft *dto.EnseignantDraft) (*model.Enseignant, error)
	UpdateEnseignant(ctx context.Context, patch *dto.EnseignantPatch) (*model.Enseignant, error)
	DeleteEnseignant(ctx context.Context, id string) error

	ListClasses(ctx context.Context) ([]model.Classe, error)
	AddClasse(ctx context.Context, draft *dto.ClasseDraft) (*model.Classe, error)
	UpdateClasse(ctx context.Context, patch *dto.ClassePatch) (*model.Classe, error)
	DeleteClasse(ctx context.Context, id string) error

	ListSalles(ctx context.Context) ([]model.Salle, error)
	AddSalle(ctx context.Context, draft *dto.SalleDraft) (*model.Salle, error)
	UpdateSalle(ctx context.Context, patch *dto.SallePatch) (*model.Salle, error)
	DeleteSalle(ctx context.Context, id string) error

	ListMatieres(ctx context.Context) ([]model.Matiere, error)
	AddMatiere(ctx context.Context, draft *dto.MatiereDraft) (*model.Matiere, error)
	UpdateMatiere(ctx context.Context, patch *dto.MatierePatch) (*model.Matiere, error)
	DeleteMatiere(ctx context.Context, id string) error
}

type referenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReferenceService creates a ReferenceService.
func NewReferenceService(repo *repository.Repository, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, logger: logger}
}

// ── Enseignants ──

func (s *referenceService) ListEnseignants(ctx context.Context) ([]model.Enseignant, error) {
	return s.repo.Enseignant.List(ctx)
}

func (s *referenceService) AddEnseignant(ctx context.Context, draft *dto.EnseignantDraft) (*model.Enseignant, error) {
	if draft.Nom == "" {
		return nil, apperrors.NewValidation("nom")
	}
	e := &model.Enseignant{Nom: draft.Nom, Prenom: draft.Prenom, Email: draft.Email}
	if err := s.repo.Enseignant.Create(ctx, e); err != nil {
		s.logger.Error("échec de la création de l'enseignant", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (s *referenceService) UpdateEnseignant(ctx context.Context, patch *dto.EnseignantPatch) (*model.Enseignant, error) {
	e, err := s.repo.Enseignant.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, wrapNotFound(err, "enseignant", patch.ID)
	}
	if patch.Nom != nil {
		e.Nom = *patch.Nom
	}
	if patch.Prenom != nil {
		e.Prenom = *patch.Prenom
	}
	if patch.Email != nil {
		e.Email = *patch.Email
	}
	if err := s.repo.Enseignant.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *referenceService) DeleteEnseignant(ctx context.Context, id string) error {
	if _, err := s.repo.Enseignant.GetByID(ctx, id); err != nil {
		return wrapNotFound(err, "enseignant", id)
	}
	return s.repo.Enseignant.Delete(ctx, id)
}

// ── Classes ──

func (s *referenceService) ListClasses(ctx context.Context) ([]model.Classe, error) {
	return s.repo.Classe.List(ctx)
}

func (s *referenceService) AddClasse(ctx context.Context, draft *dto.ClasseDraft) (*model.Classe, error) {
	if draft.Nom == "" {
		return nil, apperrors.NewValidation("nom")
	}
	c := &model.Classe{Nom: draft.Nom, Niveau: draft.Niveau}
	if err := s.repo.Classe.Create(ctx, c); err != nil {
		s.logger.Error("échec de la création de la classe", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *referenceService) UpdateClasse(ctx context.Context, patch *dto.ClassePatch) (*model.Classe, error) {
	c, err := s.repo.Classe.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, wrapNotFound(err, "classe", patch.ID)
	}
	if patch.Nom != nil {
		c.Nom = *patch.Nom
	}
	if patch.Niveau != nil {
		c.Niveau = *patch.Niveau
	}
	if err := s.repo.Classe.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *referenceService) DeleteClasse(ctx context.Context, id string) error {
	if _, err := s.repo.Classe.GetByID(ctx, id); err != nil {
		return wrapNotFound(err, "classe", id)
	}
	return s.repo.Classe.Delete(ctx, id)
}

// ── Salles ──

func (s *referenceService) ListSalles(ctx context.Context) ([]model.Salle, error) {
	return s.repo.Salle.List(ctx)
}

func (s *referenceService) AddSalle(ctx context.Context, draft *dto.SalleDraft) (*model.Salle, error) {
	if draft.Nom == "" {
		return nil, apperrors.NewValidation("nom")
	}
	salle := &model.Salle{Nom: draft.Nom, Capacite: draft.Capacite}
	if err := s.repo.Salle.Create(ctx, salle); err != nil {
		s.logger.Error("échec de la création de la salle", zap.Error(err))
		return nil, err
	}
	return salle, nil
}

func (s *referenceService) UpdateSalle(ctx context.Context, patch *dto.SallePatch) (*model.Salle, error) {
	salle, err := s.repo.Salle.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, wrapNotFound(err, "salle", patch.ID)
	}
	if patch.Nom != nil {
		salle.Nom = *patch.Nom
	}
	if patch.Capacite != nil {
		salle.Capacite = *patch.Capacite
	}
	if err := s.repo.Salle.Update(ctx, salle); err != nil {
		return nil, err
	}
	return salle, nil
}

func (s *referenceService) DeleteSalle(ctx context.Context, id string) error {
	if _, err := s.repo.Salle.GetByID(ctx, id); err != nil {
		return wrapNotFound(err, "salle", id)
	}
	return s.repo.Salle.Delete(ctx, id)
}

// ── Matieres ──

func (s *referenceService) ListMatieres(ctx context.Context) ([]model.Matiere, error) {
	return s.repo.Matiere.List(ctx)
}

func (s *referenceService) AddMatiere(ctx context.Context, draft *dto.MatiereDraft) (*model.Matiere, error) {
	if draft.Nom == "" {
		return nil, apperrors.NewValidation("nom")
	}
	m := &model.Matiere{Nom: draft.Nom}
	if err := s.repo.Matiere.Create(ctx, m); err != nil {
		s.logger.Error("échec de la création de la matière", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (s *referenceService) UpdateMatiere(ctx context.Context, patch *dto.MatierePatch) (*model.Matiere, error) {
	m, err := s.repo.Matiere.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, wrapNotFound(err, "matiere", patch.ID)
	}
	if patch.Nom != nil {
		m.Nom = *patch.Nom
	}
	if err := s.repo.Matiere.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *referenceService) DeleteMatiere(ctx context.Context, id string) error {
	if _, err := s.repo.Matiere.GetByID(ctx, id); err != nil {
		return wrapNotFound(err, "matiere", id)
	}
	return s.repo.Matiere.Delete(ctx, id)
}

// wrapNotFound translates gorm.ErrRecordNotFound into the shared
// NotFoundError taxonomy.
func wrapNotFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(entity, id)
	}
	return err
}
