package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
)

// Reference-data repositories. All four share the same CRUD shape;
// lists are ordered by name for stable display.

// EnseignantRepository is the teacher data access interface.
type EnseignantRepository interface {
	Create(ctx context.Context, e *model.Enseignant) error
	GetByID(ctx context.Context, id string) (*model.Enseignant, error)
	List(ctx context.Context) ([]model.Enseignant, error)
	Update(ctx context.Context, e *model.Enseignant) error
	Delete(ctx context.Context, id string) error
}

type enseignantRepo struct {
	db *gorm.DB
}

// NewEnseignantRepo creates an EnseignantRepository.
func NewEnseignantRepo(db *gorm.DB) EnseignantRepository {
	return &enseignantRepo{db: db}
}

func (r *enseignantRepo) Create(ctx context.Context, e *model.Enseignant) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enseignantRepo) GetByID(ctx context.Context, id string) (*model.Enseignant, error) {
	var e model.Enseignant
	err := r.db.WithContext(ctx).Where("enseignant_id = ?", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enseignantRepo) List(ctx context.Context) ([]model.Enseignant, error) {
	var list []model.Enseignant
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&list).Error
	return list, err
}

func (r *enseignantRepo) Update(ctx context.Context, e *model.Enseignant) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *enseignantRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("enseignant_id = ?", id).Delete(&model.Enseignant{}).Error
}

// ClasseRepository is the class data access interface.
type ClasseRepository interface {
	Create(ctx context.Context, c *model.Classe) error
	GetByID(ctx context.Context, id string) (*model.Classe, error)
	List(ctx context.Context) ([]model.Classe, error)
	Update(ctx context.Context, c *model.Classe) error
	Delete(ctx context.Context, id string) error
}

type classeRepo struct {
	db *gorm.DB
}

// NewClasseRepo creates a ClasseRepository.
func NewClasseRepo(db *gorm.DB) ClasseRepository {
	return &classeRepo{db: db}
}

func (r *classeRepo) Create(ctx context.Context, c *model.Classe) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *classeRepo) GetByID(ctx context.Context, id string) (*model.Classe, error) {
	var c model.Classe
	err := r.db.WithContext(ctx).Where("classe_id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *classeRepo) List(ctx context.Context) ([]model.Classe, error) {
	var list []model.Classe
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&list).Error
	return list, err
}

func (r *classeRepo) Update(ctx context.Context, c *model.Classe) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *classeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("classe_id = ?", id).Delete(&model.Classe{}).Error
}

// SalleRepository is the room data access interface.
type SalleRepository interface {
	Create(ctx context.Context, s *model.Salle) error
	GetByID(ctx context.Context, id string) (*model.Salle, error)
	List(ctx context.Context) ([]model.Salle, error)
	Update(ctx context.Context, s *model.Salle) error
	Delete(ctx context.Context, id string) error
}

type salleRepo struct {
	db *gorm.DB
}

// NewSalleRepo creates a SalleRepository.
func NewSalleRepo(db *gorm.DB) SalleRepository {
	return &salleRepo{db: db}
}

func (r *salleRepo) Create(ctx context.Context, s *model.Salle) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *salleRepo) GetByID(ctx context.Context, id string) (*model.Salle, error) {
	var s model.Salle
	err := r.db.WithContext(ctx).Where("salle_id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salleRepo) List(ctx context.Context) ([]model.Salle, error) {
	var list []model.Salle
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&list).Error
	return list, err
}

func (r *salleRepo) Update(ctx context.Context, s *model.Salle) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *salleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("salle_id = ?", id).Delete(&model.Salle{}).Error
}

// MatiereRepository is the subject data access interface.
type MatiereRepository interface {
	Create(ctx context.Context, m *model.Matiere) error
	GetByID(ctx context.Context, id string) (*model.Matiere, error)
	List(ctx context.Context) ([]model.Matiere, error)
	Update(ctx context.Context, m *model.Matiere) error
	Delete(ctx context.Context, id string) error
}

type matiereRepo struct {
	db *gorm.DB
}

// NewMatiereRepo creates a MatiereRepository.
func NewMatiereRepo(db *gorm.DB) MatiereRepository {
	return &matiereRepo{db: db}
}

func (r *matiereRepo) Create(ctx context.Context, m *model.Matiere) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matiereRepo) GetByID(ctx context.Context, id string) (*model.Matiere, error) {
	var m model.Matiere
	err := r.db.WithContext(ctx).Where("matiere_id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matiereRepo) List(ctx context.Context) ([]model.Matiere, error) {
	var list []model.Matiere
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&list).Error
	return list, err
}

func (r *matiereRepo) Update(ctx context.Context, m *model.Matiere) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *matiereRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("matiere_id = ?", id).Delete(&model.Matiere{}).Error
}
