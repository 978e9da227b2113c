package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
)

// In-memory repositories backing the service tests. Each mock mirrors
// the ordering contract of its real counterpart.

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:         &mockUserRepo{users: map[string]*model.User{}},
		Enseignant:   &mockEnseignantRepo{items: map[string]*model.Enseignant{}},
		Classe:       &mockClasseRepo{items: map[string]*model.Classe{}},
		Salle:        &mockSalleRepo{items: map[string]*model.Salle{}},
		Matiere:      &mockMatiereRepo{items: map[string]*model.Matiere{}},
		Uhr:          &mockUhrRepo{items: map[string]*model.Uhr{}},
		Cours:        &mockCoursRepo{items: map[string]*model.Cours{}},
		Surveillance: &mockSurveillanceRepo{items: map[string]*model.Surveillance{}},
		Annotation:   &mockAnnotationRepo{items: map[string]*model.Annotation{}},
	}
}

// ── users ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by email
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	m.users[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── teachers ──

type mockEnseignantRepo struct {
	items map[string]*model.Enseignant
}

func (m *mockEnseignantRepo) Create(_ context.Context, e *model.Enseignant) error {
	if e.EnseignantID == "" {
		e.EnseignantID = uuid.New().String()
	}
	m.items[e.EnseignantID] = e
	return nil
}

func (m *mockEnseignantRepo) GetByID(_ context.Context, id string) (*model.Enseignant, error) {
	e, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEnseignantRepo) List(_ context.Context) ([]model.Enseignant, error) {
	out := make([]model.Enseignant, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (m *mockEnseignantRepo) Update(_ context.Context, e *model.Enseignant) error {
	if _, ok := m.items[e.EnseignantID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[e.EnseignantID] = e
	return nil
}

func (m *mockEnseignantRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── classes ──

type mockClasseRepo struct {
	items map[string]*model.Classe
}

func (m *mockClasseRepo) Create(_ context.Context, c *model.Classe) error {
	if c.ClasseID == "" {
		c.ClasseID = uuid.New().String()
	}
	m.items[c.ClasseID] = c
	return nil
}

func (m *mockClasseRepo) GetByID(_ context.Context, id string) (*model.Classe, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockClasseRepo) List(_ context.Context) ([]model.Classe, error) {
	out := make([]model.Classe, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (m *mockClasseRepo) Update(_ context.Context, c *model.Classe) error {
	if _, ok := m.items[c.ClasseID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[c.ClasseID] = c
	return nil
}

func (m *mockClasseRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── rooms ──

type mockSalleRepo struct {
	items map[string]*model.Salle
}

func (m *mockSalleRepo) Create(_ context.Context, s *model.Salle) error {
	if s.SalleID == "" {
		s.SalleID = uuid.New().String()
	}
	m.items[s.SalleID] = s
	return nil
}

func (m *mockSalleRepo) GetByID(_ context.Context, id string) (*model.Salle, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSalleRepo) List(_ context.Context) ([]model.Salle, error) {
	out := make([]model.Salle, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (m *mockSalleRepo) Update(_ context.Context, s *model.Salle) error {
	if _, ok := m.items[s.SalleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[s.SalleID] = s
	return nil
}

func (m *mockSalleRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── subjects ──

type mockMatiereRepo struct {
	items map[string]*model.Matiere
}

func (m *mockMatiereRepo) Create(_ context.Context, mt *model.Matiere) error {
	if mt.MatiereID == "" {
		mt.MatiereID = uuid.New().String()
	}
	m.items[mt.MatiereID] = mt
	return nil
}

func (m *mockMatiereRepo) GetByID(_ context.Context, id string) (*model.Matiere, error) {
	mt, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *mt
	return &cp, nil
}

func (m *mockMatiereRepo) List(_ context.Context) ([]model.Matiere, error) {
	out := make([]model.Matiere, 0, len(m.items))
	for _, mt := range m.items {
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (m *mockMatiereRepo) Update(_ context.Context, mt *model.Matiere) error {
	if _, ok := m.items[mt.MatiereID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[mt.MatiereID] = mt
	return nil
}

func (m *mockMatiereRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── time slots ──

type mockUhrRepo struct {
	items map[string]*model.Uhr
}

func (m *mockUhrRepo) Create(_ context.Context, u *model.Uhr) error {
	if u.UhrID == "" {
		u.UhrID = uuid.New().String()
	}
	m.items[u.UhrID] = u
	return nil
}

func (m *mockUhrRepo) GetByID(_ context.Context, id string) (*model.Uhr, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUhrRepo) List(_ context.Context) ([]model.Uhr, error) {
	out := make([]model.Uhr, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nummer < out[j].Nummer })
	return out, nil
}

func (m *mockUhrRepo) Update(_ context.Context, u *model.Uhr) error {
	if _, ok := m.items[u.UhrID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[u.UhrID] = u
	return nil
}

func (m *mockUhrRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── courses ──

type mockCoursRepo struct {
	items map[string]*model.Cours
}

func (m *mockCoursRepo) Create(_ context.Context, c *model.Cours) error {
	if c.CoursID == "" {
		c.CoursID = uuid.New().String()
	}
	cp := *c
	m.items[c.CoursID] = &cp
	return nil
}

func (m *mockCoursRepo) GetByID(_ context.Context, id string) (*model.Cours, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCoursRepo) List(_ context.Context) ([]model.Cours, error) {
	out := make([]model.Cours, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CoursID < out[j].CoursID })
	return out, nil
}

func (m *mockCoursRepo) ListByWeek(_ context.Context, semaine, annee int) ([]model.Cours, error) {
	var out []model.Cours
	for _, c := range m.items {
		if c.Semaine == semaine && c.Annee == annee {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CoursID < out[j].CoursID })
	return out, nil
}

func (m *mockCoursRepo) ListByCell(_ context.Context, jour, uhrID string, semaine, annee int) ([]model.Cours, error) {
	var out []model.Cours
	for _, c := range m.items {
		if c.Jour == jour && c.UhrID == uhrID && c.Semaine == semaine && c.Annee == annee {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCoursRepo) Update(_ context.Context, c *model.Cours) error {
	if _, ok := m.items[c.CoursID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	m.items[c.CoursID] = &cp
	return nil
}

func (m *mockCoursRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── supervisions ──

type mockSurveillanceRepo struct {
	items map[string]*model.Surveillance
}

func (m *mockSurveillanceRepo) Create(_ context.Context, s *model.Surveillance) error {
	if s.SurveillanceID == "" {
		s.SurveillanceID = uuid.New().String()
	}
	cp := *s
	m.items[s.SurveillanceID] = &cp
	return nil
}

func (m *mockSurveillanceRepo) GetByID(_ context.Context, id string) (*model.Surveillance, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSurveillanceRepo) List(_ context.Context) ([]model.Surveillance, error) {
	out := make([]model.Surveillance, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Ordre < b.Ordre
	})
	return out, nil
}

func (m *mockSurveillanceRepo) MaxOrdreAtPosition(_ context.Context, jour string, position, semaine, annee int) (int, error) {
	max := 0
	for _, s := range m.items {
		if s.Jour == jour && s.Position == position && s.Semaine == semaine && s.Annee == annee && s.Ordre > max {
			max = s.Ordre
		}
	}
	return max, nil
}

func (m *mockSurveillanceRepo) Update(_ context.Context, s *model.Surveillance) error {
	if _, ok := m.items[s.SurveillanceID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	m.items[s.SurveillanceID] = &cp
	return nil
}

func (m *mockSurveillanceRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

// ── annotations ──

type mockAnnotationRepo struct {
	items map[string]*model.Annotation // keyed by jour|semaine|annee
}

func annotationKey(jour string, semaine, annee int) string {
	return fmt.Sprintf("%s|%d|%d", jour, semaine, annee)
}

func (m *mockAnnotationRepo) ListByWeek(_ context.Context, semaine, annee int) ([]model.Annotation, error) {
	var out []model.Annotation
	for _, a := range m.items {
		if a.Semaine == semaine && a.Annee == annee {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAnnotationRepo) Upsert(_ context.Context, a *model.Annotation) error {
	k := annotationKey(a.Jour, a.Semaine, a.Annee)
	if existing, ok := m.items[k]; ok {
		existing.Texte = a.Texte
		return nil
	}
	if a.AnnotationID == "" {
		a.AnnotationID = uuid.New().String()
	}
	cp := *a
	m.items[k] = &cp
	return nil
}
