package model

// Reference data: teachers, classes, rooms, subjects. Pure CRUD
// records consumed by the planning core for lookups and availability
// checks.

// Enseignant is a teacher in table enseignants.
type Enseignant struct {
	EnseignantID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom          string `gorm:"type:varchar(255);not null" json:"nom"`
	Prenom       string `gorm:"type:varchar(255);not null;default:''" json:"prenom"`
	Email        string `gorm:"type:varchar(255);not null;default:''" json:"email"`
	BaseModel
}

func (Enseignant) TableName() string { return "enseignants" }

// Classe is a school class in table classes.
type Classe struct {
	ClasseID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom      string `gorm:"type:varchar(255);not null" json:"nom"`
	Niveau   string `gorm:"type:varchar(50);not null;default:''" json:"niveau"`
	BaseModel
}

func (Classe) TableName() string { return "classes" }

// Salle is a room in table salles.
type Salle struct {
	SalleID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom      string `gorm:"type:varchar(255);not null" json:"nom"`
	Capacite int    `gorm:"not null;default:0" json:"capacite"`
	BaseModel
}

func (Salle) TableName() string { return "salles" }

// Matiere is a subject in table matieres.
type Matiere struct {
	MatiereID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom       string `gorm:"type:varchar(255);not null" json:"nom"`
	BaseModel
}

func (Matiere) TableName() string { return "matieres" }
