package dto

// ── Reference data drafts/patches ──

// EnseignantDraft creates a teacher.
type EnseignantDraft struct {
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

// EnseignantPatch updates a teacher.
type EnseignantPatch struct {
	ID     string  `json:"id"`
	Nom    *string `json:"nom,omitempty"`
	Prenom *string `json:"prenom,omitempty"`
	Email  *string `json:"email,omitempty"`
}

// ClasseDraft creates a class.
type ClasseDraft struct {
	Nom    string `json:"nom"`
	Niveau string `json:"niveau"`
}

// ClassePatch updates a class.
type ClassePatch struct {
	ID     string  `json:"id"`
	Nom    *string `json:"nom,omitempty"`
	Niveau *string `json:"niveau,omitempty"`
}

// SalleDraft creates a room.
type SalleDraft struct {
	Nom      string `json:"nom"`
	Capacite int    `json:"capacite"`
}

// SallePatch updates a room.
type SallePatch struct {
	ID       string  `json:"id"`
	Nom      *string `json:"nom,omitempty"`
	Capacite *int    `json:"capacite,omitempty"`
}

// MatiereDraft creates a subject.
type MatiereDraft struct {
	Nom string `json:"nom"`
}

// MatierePatch updates a subject.
type MatierePatch struct {
	ID  string  `json:"id"`
	Nom *string `json:"nom,omitempty"`
}

// UhrDraft creates a time slot.
type UhrDraft struct {
	Nummer int    `json:"nummer"`
	Start  string `json:"start"`
	Ende   string `json:"ende"`
}

// UhrPatch updates a time slot.
type UhrPatch struct {
	ID     string  `json:"id"`
	Nummer *int    `json:"nummer,omitempty"`
	Start  *string `json:"start,omitempty"`
	Ende   *string `json:"ende,omitempty"`
}
