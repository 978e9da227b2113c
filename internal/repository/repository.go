package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User         UserRepository
	Enseignant   EnseignantRepository
	Classe       ClasseRepository
	Salle        SalleRepository
	Matiere      MatiereRepository
	Uhr          UhrRepository
	Cours        CoursRepository
	Surveillance SurveillanceRepository
	Annotation   AnnotationRepository
}

// NewRepository wires every repository against the shared connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Enseignant:   NewEnseignantRepo(db),
		Classe:       NewClasseRepo(db),
		Salle:        NewSalleRepo(db),
		Matiere:      NewMatiereRepo(db),
		Uhr:          NewUhrRepo(db),
		Cours:        NewCoursRepo(db),
		Surveillance: NewSurveillanceRepo(db),
		Annotation:   NewAnnotationRepo(db),
	}
}
