package dto

import "github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"

// ── Courses ──

// CoursFilter narrows ListCours results. Zero values mean "no filter".
type CoursFilter struct {
	Classe       string `json:"classe,omitempty"`
	EnseignantID string `json:"enseignant,omitempty"`
	Semaine      int    `json:"semaine,omitempty"`
	Annee        int    `json:"annee,omitempty"`
}

// CoursDraft is the payload for creating a course. All fields except
// Commentaire are required; Heure is denormalized from the slot when
// empty.
type CoursDraft struct {
	Classe      string               `json:"classe"`
	Enseignants model.EnseignantRefs `json:"enseignants"`
	Matiere     string               `json:"matiere"`
	Salle       string               `json:"salle"`
	Jour        string               `json:"jour"`
	UhrID       string               `json:"uhr"`
	Semaine     int                  `json:"semaine"`
	Annee       int                  `json:"annee"`
	Commentaire string               `json:"commentaire"`
}

// CoursPatch is a partial course update. Nil fields stay untouched.
// Annule and Remplace are persisted exactly as given: the store does
// not enforce exclusivity between them.
type CoursPatch struct {
	ID               string                `json:"id"`
	Classe           *string               `json:"classe,omitempty"`
	Enseignants      *model.EnseignantRefs `json:"enseignants,omitempty"`
	Matiere          *string               `json:"matiere,omitempty"`
	Salle            *string               `json:"salle,omitempty"`
	Jour             *string               `json:"jour,omitempty"`
	UhrID            *string               `json:"uhr,omitempty"`
	Semaine          *int                  `json:"semaine,omitempty"`
	Annee            *int                  `json:"annee,omitempty"`
	Commentaire      *string               `json:"commentaire,omitempty"`
	Annule           *bool                 `json:"annule,omitempty"`
	Remplace         *bool                 `json:"remplace,omitempty"`
	RemplacementInfo *string               `json:"remplacementInfo,omitempty"`
}

// PasteWeekRequest clones every course of the source week into the
// target week. Additive: existing target-week courses are kept.
type PasteWeekRequest struct {
	SourceWeek int `json:"sourceWeek"`
	SourceYear int `json:"sourceYear"`
	TargetWeek int `json:"targetWeek"`
	TargetYear int `json:"targetYear"`
}

// ── Supervisions ──

// SurveillanceFilter narrows ListSurveillances results.
type SurveillanceFilter struct {
	Enseignant string `json:"enseignant,omitempty"`
	Semaine    int    `json:"semaine,omitempty"`
	Annee      int    `json:"annee,omitempty"`
}

// SurveillanceDraft is the payload for creating a supervision entry.
// Ordre is optional: when zero it is assigned max(existing)+1 within
// the same (jour, position, semaine, annee).
type SurveillanceDraft struct {
	Enseignant string  `json:"enseignant"`
	Lieu       string  `json:"lieu"`
	Jour       string  `json:"jour"`
	UhrID      *string `json:"uhr,omitempty"`
	Position   *int    `json:"position,omitempty"`
	Ordre      *int    `json:"ordre,omitempty"`
	Semaine    int     `json:"semaine"`
	Annee      int     `json:"annee"`
}

// SurveillancePatch is a partial supervision update.
type SurveillancePatch struct {
	ID         string  `json:"id"`
	Enseignant *string `json:"enseignant,omitempty"`
	Lieu       *string `json:"lieu,omitempty"`
	Jour       *string `json:"jour,omitempty"`
	UhrID      *string `json:"uhr,omitempty"`
	Position   *int    `json:"position,omitempty"`
	Ordre      *int    `json:"ordre,omitempty"`
	Semaine    *int    `json:"semaine,omitempty"`
	Annee      *int    `json:"annee,omitempty"`
}

// ── Annotations ──

// AnnotationSave upserts the note of one (jour, semaine, annee).
// An empty Texte is a valid value.
type AnnotationSave struct {
	Jour    string `json:"jour"`
	Semaine int    `json:"semaine"`
	Annee   int    `json:"annee"`
	Texte   string `json:"texte"`
}

// WeekKey identifies one week of the planning grid.
type WeekKey struct {
	Semaine int `json:"semaine"`
	Annee   int `json:"annee"`
}
