package model

// Cours is one course entry of the planning grid in table cours.
// A course always belongs to exactly one (jour, uhr, semaine, annee)
// cell. Room and teacher occupancy within a cell is advisory only:
// the store never rejects a double booking, the availability queries
// merely hide already-used rooms and teachers from the creation form.
type Cours struct {
	CoursID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Classe           string         `gorm:"type:varchar(255);not null" json:"classe"`
	Enseignants      EnseignantRefs `gorm:"type:jsonb;not null;default:'[]'" json:"enseignants"`
	Matiere          string         `gorm:"type:varchar(255);not null" json:"matiere"`
	Salle            string         `gorm:"type:varchar(255);not null" json:"salle"`
	Jour             string         `gorm:"type:varchar(20);not null" json:"jour"`
	Heure            string         `gorm:"type:varchar(20);not null;default:''" json:"heure"`
	UhrID            string         `gorm:"column:uhr_id;type:uuid;not null" json:"uhr"`
	Semaine          int            `gorm:"not null" json:"semaine"`
	Annee            int            `gorm:"not null" json:"annee"`
	Commentaire      string         `gorm:"type:text;not null;default:''" json:"commentaire"`
	Annule           bool           `gorm:"not null;default:false" json:"annule"`
	Remplace         bool           `gorm:"not null;default:false" json:"remplace"`
	RemplacementInfo string         `gorm:"type:text;not null;default:''" json:"remplacementInfo"`
	BaseModel
}

// TableName overrides the table name.
func (Cours) TableName() string { return "cours" }
