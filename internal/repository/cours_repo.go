package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
)

// CoursRepository is the course data access interface.
type CoursRepository interface {
	Create(ctx context.Context, c *model.Cours) error
	GetByID(ctx context.Context, id string) (*model.Cours, error)
	List(ctx context.Context) ([]model.Cours, error)
	ListByWeek(ctx context.Context, semaine, annee int) ([]model.Cours, error)
	ListByCell(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Cours, error)
	Update(ctx context.Context, c *model.Cours) error
	Delete(ctx context.Context, id string) error
}

type coursRepo struct {
	db *gorm.DB
}

// NewCoursRepo creates a CoursRepository.
func NewCoursRepo(db *gorm.DB) CoursRepository {
	return &coursRepo{db: db}
}

func (r *coursRepo) Create(ctx context.Context, c *model.Cours) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *coursRepo) GetByID(ctx context.Context, id string) (*model.Cours, error) {
	var c model.Cours
	err := r.db.WithContext(ctx).Where("cours_id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *coursRepo) List(ctx context.Context) ([]model.Cours, error) {
	var list []model.Cours
	err := r.db.WithContext(ctx).
		Order("annee ASC, semaine ASC, jour ASC").
		Find(&list).Error
	return list, err
}

func (r *coursRepo) ListByWeek(ctx context.Context, semaine, annee int) ([]model.Cours, error) {
	var list []model.Cours
	err := r.db.WithContext(ctx).
		Where("semaine = ? AND annee = ?", semaine, annee).
		Find(&list).Error
	return list, err
}

func (r *coursRepo) ListByCell(ctx context.Context, jour, uhrID string, semaine, annee int) ([]model.Cours, error) {
	var list []model.Cours
	err := r.db.WithContext(ctx).
		Where("jour = ? AND uhr_id = ? AND semaine = ? AND annee = ?", jour, uhrID, semaine, annee).
		Find(&list).Error
	return list, err
}

func (r *coursRepo) Update(ctx context.Context, c *model.Cours) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *coursRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("cours_id = ?", id).Delete(&model.Cours{}).Error
}
