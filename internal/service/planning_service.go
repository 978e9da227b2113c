package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
)

// ErrSameWeekPaste rejects a week copy whose source and target are the
// same week. A ValidationError, so the REST boundary maps it to 400
// like any other invalid request.
var ErrSameWeekPaste = apperrors.NewInvalid("impossible de coller dans la même semaine")

// PlanningService owns the course side of the planning grid: CRUD,
// drag moves, per-cell availability and the week copy operation.
//
// Occupancy of a cell is a soft constraint: AvailableSalles and
// AvailableEnseignants hide already-used options from the creation
// form, but AddCours never rejects a conflicting write. Cancelled
// courses release their room and teachers.
type PlanningService interface {
	ListCours(ctx context.Context, filter *dto.CoursFilter) ([]model.Cours, error)
	AddCours(ctx context.Context, draft *dto.CoursDraft) (*model.Cours, error)
	UpdateCours(ctx context.Context, patch *dto.CoursPatch) (*model.Cours, error)
	DeleteCours(ctx context.Context, id string) error
	MoveCours(ctx context.Context, id, newJour, newUhrID string) (*model.Cours, error)
	AvailableSalles(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Salle, error)
	AvailableEnseignants(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Enseignant, error)
	PasteWeek(ctx context.Context, req *dto.PasteWeekRequest) ([]model.Cours, error)
}

type planningService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlanningService creates a PlanningService.
func NewPlanningService(repo *repository.Repository, logger *zap.Logger) PlanningService {
	return &planningService{repo: repo, logger: logger}
}

// ────────────────────── ListCours ──────────────────────

func (s *planningService) ListCours(ctx context.Context, filter *dto.CoursFilter) ([]model.Cours, error) {
	all, err := s.repo.Cours.List(ctx)
	if err != nil {
		s.logger.Error("échec de la lecture des cours", zap.Error(err))
		return nil, err
	}
	if filter == nil {
		return all, nil
	}

	result := make([]model.Cours, 0, len(all))
	for _, c := range all {
		if filter.Classe != "" && c.Classe != filter.Classe {
			continue
		}
		if filter.EnseignantID != "" && !hasEnseignant(c.Enseignants, filter.EnseignantID) {
			continue
		}
		if filter.Semaine != 0 && c.Semaine != filter.Semaine {
			continue
		}
		if filter.Annee != 0 && c.Annee != filter.Annee {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func hasEnseignant(refs model.EnseignantRefs, id string) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}

// ────────────────────── AddCours ──────────────────────

func (s *planningService) AddCours(ctx context.Context, draft *dto.CoursDraft) (*model.Cours, error) {
	if err := validateCoursDraft(draft); err != nil {
		return nil, err
	}

	heure := ""
	uhr, err := s.repo.Uhr.GetByID(ctx, draft.UhrID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Unknown slot id: keep the course, the display string stays
		// empty until the slot exists.
	} else {
		heure = uhr.Zeitslot()
	}

	cours := &model.Cours{
		Classe:      draft.Classe,
		Enseignants: draft.Enseignants,
		Matiere:     draft.Matiere,
		Salle:       draft.Salle,
		Jour:        draft.Jour,
		Heure:       heure,
		UhrID:       draft.UhrID,
		Semaine:     draft.Semaine,
		Annee:       draft.Annee,
		Commentaire: draft.Commentaire,
	}

	if err := s.repo.Cours.Create(ctx, cours); err != nil {
		s.logger.Error("échec de la création du cours", zap.Error(err))
		return nil, err
	}

	return cours, nil
}

func validateCoursDraft(draft *dto.CoursDraft) error {
	var missing []string
	if draft.Classe == "" {
		missing = append(missing, "classe")
	}
	if len(draft.Enseignants) == 0 {
		missing = append(missing, "enseignants")
	}
	if draft.Matiere == "" {
		missing = append(missing, "matiere")
	}
	if draft.Salle == "" {
		missing = append(missing, "salle")
	}
	if draft.Jour == "" {
		missing = append(missing, "jour")
	}
	if draft.UhrID == "" {
		missing = append(missing, "uhr")
	}
	if draft.Semaine < 1 || draft.Semaine > 53 {
		missing = append(missing, "semaine")
	}
	if draft.Annee == 0 {
		missing = append(missing, "annee")
	}
	if len(missing) > 0 {
		return apperrors.NewValidation(missing...)
	}
	return nil
}

// ────────────────────── UpdateCours ──────────────────────

// UpdateCours applies a partial patch. Annule and Remplace are
// persisted exactly as supplied: the store does not clear one when
// the other is set, and a remplacementInfo without remplace=true is
// stored as-is.
func (s *planningService) UpdateCours(ctx context.Context, patch *dto.CoursPatch) (*model.Cours, error) {
	cours, err := s.getCours(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.Classe != nil {
		cours.Classe = *patch.Classe
	}
	if patch.Enseignants != nil {
		cours.Enseignants = *patch.Enseignants
	}
	if patch.Matiere != nil {
		cours.Matiere = *patch.Matiere
	}
	if patch.Salle != nil {
		cours.Salle = *patch.Salle
	}
	if patch.Jour != nil {
		cours.Jour = *patch.Jour
	}
	if patch.UhrID != nil {
		cours.UhrID = *patch.UhrID
		if uhr, err := s.repo.Uhr.GetByID(ctx, *patch.UhrID); err == nil {
			cours.Heure = uhr.Zeitslot()
		}
	}
	if patch.Semaine != nil {
		cours.Semaine = *patch.Semaine
	}
	if patch.Annee != nil {
		cours.Annee = *patch.Annee
	}
	if patch.Commentaire != nil {
		cours.Commentaire = *patch.Commentaire
	}
	if patch.Annule != nil {
		cours.Annule = *patch.Annule
	}
	if patch.Remplace != nil {
		cours.Remplace = *patch.Remplace
	}
	if patch.RemplacementInfo != nil {
		cours.RemplacementInfo = *patch.RemplacementInfo
	}

	if err := s.repo.Cours.Update(ctx, cours); err != nil {
		s.logger.Error("échec de la mise à jour du cours", zap.String("id", patch.ID), zap.Error(err))
		return nil, err
	}

	return cours, nil
}

// ────────────────────── DeleteCours ──────────────────────

func (s *planningService) DeleteCours(ctx context.Context, id string) error {
	if _, err := s.getCours(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Cours.Delete(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du cours", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── MoveCours ──────────────────────

// MoveCours relocates a course to another cell (drag-and-drop) and
// recomputes the denormalized heure display string from the target
// slot.
func (s *planningService) MoveCours(ctx context.Context, id, newJour, newUhrID string) (*model.Cours, error) {
	if newJour == "" || newUhrID == "" {
		return nil, apperrors.NewValidation("jour", "uhr")
	}

	return s.UpdateCours(ctx, &dto.CoursPatch{
		ID:    id,
		Jour:  &newJour,
		UhrID: &newUhrID,
	})
}

// ────────────────────── Availability ──────────────────────

func (s *planningService) AvailableSalles(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Salle, error) {
	salles, err := s.repo.Salle.List(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.repo.Cours.ListByCell(ctx, jour, uhrID, semaine, annee)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(occupied))
	for _, c := range occupied {
		if c.Annule {
			continue // cancelled courses release their room
		}
		used[c.Salle] = true
	}

	free := make([]model.Salle, 0, len(salles))
	for _, salle := range salles {
		if !used[salle.Nom] {
			free = append(free, salle)
		}
	}
	return free, nil
}

func (s *planningService) AvailableEnseignants(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Enseignant, error) {
	enseignants, err := s.repo.Enseignant.List(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.repo.Cours.ListByCell(ctx, jour, uhrID, semaine, annee)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, c := range occupied {
		if c.Annule {
			continue
		}
		for _, ref := range c.Enseignants {
			busy[ref.ID] = true
		}
	}

	free := make([]model.Enseignant, 0, len(enseignants))
	for _, e := range enseignants {
		if !busy[e.EnseignantID] {
			free = append(free, e)
		}
	}
	return free, nil
}

// ────────────────────── PasteWeek ──────────────────────

// PasteWeek clones every course of the source week into the target
// week, stripping identity and audit fields. The paste is additive:
// courses already present in the target week are untouched. Rows are
// inserted one at a time; a mid-batch failure leaves a partial paste.
func (s *planningService) PasteWeek(ctx context.Context, req *dto.PasteWeekRequest) ([]model.Cours, error) {
	if req.SourceWeek == req.TargetWeek && req.SourceYear == req.TargetYear {
		return nil, ErrSameWeekPaste
	}
	if req.TargetWeek < 1 || req.TargetWeek > 53 || req.TargetYear == 0 {
		return nil, apperrors.NewValidation("targetWeek", "targetYear")
	}

	source, err := s.repo.Cours.ListByWeek(ctx, req.SourceWeek, req.SourceYear)
	if err != nil {
		return nil, err
	}

	pasted := make([]model.Cours, 0, len(source))
	for _, src := range source {
		clone := model.Cours{
			Classe:           src.Classe,
			Enseignants:      src.Enseignants,
			Matiere:          src.Matiere,
			Salle:            src.Salle,
			Jour:             src.Jour,
			Heure:            src.Heure,
			UhrID:            src.UhrID,
			Semaine:          req.TargetWeek,
			Annee:            req.TargetYear,
			Commentaire:      src.Commentaire,
			Annule:           src.Annule,
			Remplace:         src.Remplace,
			RemplacementInfo: src.RemplacementInfo,
		}
		if err := s.repo.Cours.Create(ctx, &clone); err != nil {
			s.logger.Error("échec du collage de la semaine",
				zap.Int("targetWeek", req.TargetWeek),
				zap.Int("targetYear", req.TargetYear),
				zap.Error(err),
			)
			return nil, fmt.Errorf("collage de la semaine interrompu: %w", err)
		}
		pasted = append(pasted, clone)
	}

	return pasted, nil
}

// ────────────────────── helpers ──────────────────────

func (s *planningService) getCours(ctx context.Context, id string) (*model.Cours, error) {
	if id == "" {
		return nil, apperrors.NewValidation("id")
	}
	cours, err := s.repo.Cours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("cours", id)
		}
		s.logger.Error("échec de la lecture du cours", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return cours, nil
}
