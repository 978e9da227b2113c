package model

// Surveillance is one supervision entry in table surveillances.
// Position anchors the entry in the day's slot sequence: -1 is before
// the first slot, N sits after slot index N, len(slots) is after the
// last slot. Entries sharing (jour, position, semaine, annee) are
// totally ordered by Ordre and must always render ascending.
type Surveillance struct {
	SurveillanceID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Enseignant     string  `gorm:"type:varchar(255);not null" json:"enseignant"`
	Lieu           string  `gorm:"type:varchar(255);not null" json:"lieu"`
	Jour           string  `gorm:"type:varchar(20);not null" json:"jour"`
	UhrID          *string `gorm:"column:uhr_id;type:uuid" json:"uhr,omitempty"`
	Position       int     `gorm:"not null;default:-1" json:"position"`
	Ordre          int     `gorm:"not null;default:0" json:"ordre"`
	Semaine        int     `gorm:"not null" json:"semaine"`
	Annee          int     `gorm:"not null" json:"annee"`
	BaseModel
}

// TableName overrides the table name.
func (Surveillance) TableName() string { return "surveillances" }
