package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
)

// SurveillanceRepository is the supervision data access interface.
// Listings always come back ordered by ordre ascending so the render
// order invariant holds regardless of insertion order.
type SurveillanceRepository interface {
	Create(ctx context.Context, s *model.Surveillance) error
	GetByID(ctx context.Context, id string) (*model.Surveillance, error)
	List(ctx context.Context) ([]model.Surveillance, error)
	MaxOrdreAtPosition(ctx context.Context, jour string, position, semaine, annee int) (int, error)
	Update(ctx context.Context, s *model.Surveillance) error
	Delete(ctx context.Context, id string) error
}

type surveillanceRepo struct {
	db *gorm.DB
}

// NewSurveillanceRepo creates a SurveillanceRepository.
func NewSurveillanceRepo(db *gorm.DB) SurveillanceRepository {
	return &surveillanceRepo{db: db}
}

func (r *surveillanceRepo) Create(ctx context.Context, s *model.Surveillance) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *surveillanceRepo) GetByID(ctx context.Context, id string) (*model.Surveillance, error) {
	var s model.Surveillance
	err := r.db.WithContext(ctx).Where("surveillance_id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *surveillanceRepo) List(ctx context.Context) ([]model.Surveillance, error) {
	var list []model.Surveillance
	err := r.db.WithContext(ctx).
		Order("annee ASC, semaine ASC, jour ASC, position ASC, ordre ASC").
		Find(&list).Error
	return list, err
}

func (r *surveillanceRepo) MaxOrdreAtPosition(ctx context.Context, jour string, position, semaine, annee int) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.Surveillance{}).
		Select("MAX(ordre)").
		Where("jour = ? AND position = ? AND semaine = ? AND annee = ?", jour, position, semaine, annee).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *surveillanceRepo) Update(ctx context.Context, s *model.Surveillance) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *surveillanceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("surveillance_id = ?", id).Delete(&model.Surveillance{}).Error
}
