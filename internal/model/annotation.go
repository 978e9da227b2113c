package model

// Annotation is the free-text note attached to one (jour, semaine,
// annee) key, in table annotations. One note per key, upsert semantics;
// an empty Texte is a valid stored value.
type Annotation struct {
	AnnotationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Jour         string `gorm:"type:varchar(20);not null;uniqueIndex:idx_annotation_key" json:"jour"`
	Semaine      int    `gorm:"not null;uniqueIndex:idx_annotation_key" json:"semaine"`
	Annee        int    `gorm:"not null;uniqueIndex:idx_annotation_key" json:"annee"`
	Texte        string `gorm:"type:text;not null;default:''" json:"texte"`
	BaseModel
}

// TableName overrides the table name.
func (Annotation) TableName() string { return "annotations" }
