package model

// Uhr is a time slot of the weekly grid in table uhrs. Slots are
// static reference data ordered by Nummer; Start and Ende are "HH:MM"
// strings.
type Uhr struct {
	UhrID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nummer int    `gorm:"not null" json:"nummer"`
	Start  string `gorm:"column:start_time;type:varchar(5);not null" json:"start"`
	Ende   string `gorm:"column:end_time;type:varchar(5);not null" json:"ende"`
	BaseModel
}

// TableName overrides the table name.
func (Uhr) TableName() string { return "uhrs" }

// Zeitslot renders the display string used in course cells,
// e.g. "07:45 - 08:25".
func (u *Uhr) Zeitslot() string {
	return u.Start + " - " + u.Ende
}
