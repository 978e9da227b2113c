package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
)

// UhrRepository is the time-slot data access interface. Lists are
// ordered by ordinal number, the display order of the grid rows.
type UhrRepository interface {
	Create(ctx context.Context, u *model.Uhr) error
	GetByID(ctx context.Context, id string) (*model.Uhr, error)
	List(ctx context.Context) ([]model.Uhr, error)
	Update(ctx context.Context, u *model.Uhr) error
	Delete(ctx context.Context, id string) error
}

type uhrRepo struct {
	db *gorm.DB
}

// NewUhrRepo creates a UhrRepository.
func NewUhrRepo(db *gorm.DB) UhrRepository {
	return &uhrRepo{db: db}
}

func (r *uhrRepo) Create(ctx context.Context, u *model.Uhr) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *uhrRepo) GetByID(ctx context.Context, id string) (*model.Uhr, error) {
	var u model.Uhr
	err := r.db.WithContext(ctx).Where("uhr_id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *uhrRepo) List(ctx context.Context) ([]model.Uhr, error) {
	var list []model.Uhr
	err := r.db.WithContext(ctx).Order("nummer ASC").Find(&list).Error
	return list, err
}

func (r *uhrRepo) Update(ctx context.Context, u *model.Uhr) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *uhrRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("uhr_id = ?", id).Delete(&model.Uhr{}).Error
}
