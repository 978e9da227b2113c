package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
)

// AnnotationRepository is the per-day annotation data access
// interface. Upsert keys on (jour, semaine, annee).
type AnnotationRepository interface {
	ListByWeek(ctx context.Context, semaine, annee int) ([]model.Annotation, error)
	Upsert(ctx context.Context, a *model.Annotation) error
}

type annotationRepo struct {
	db *gorm.DB
}

// NewAnnotationRepo creates an AnnotationRepository.
func NewAnnotationRepo(db *gorm.DB) AnnotationRepository {
	return &annotationRepo{db: db}
}

func (r *annotationRepo) ListByWeek(ctx context.Context, semaine, annee int) ([]model.Annotation, error) {
	var list []model.Annotation
	err := r.db.WithContext(ctx).
		Where("semaine = ? AND annee = ?", semaine, annee).
		Find(&list).Error
	return list, err
}

func (r *annotationRepo) Upsert(ctx context.Context, a *model.Annotation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jour"}, {Name: "semaine"}, {Name: "annee"}},
			DoUpdates: clause.AssignmentColumns([]string{"texte", "updated_at"}),
		}).
		Create(a).Error
}
