package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BaseModel carries the audit timestamps embedded by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// EnseignantRef is one entry of a course's ordered teacher list.
type EnseignantRef struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}

// EnseignantRefs maps a JSONB column to an ordered []EnseignantRef.
type EnseignantRefs []EnseignantRef

// Scan parses the JSONB value returned by PostgreSQL.
func (r *EnseignantRefs) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("EnseignantRefs.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(data, r)
}

// Value serializes the list to JSONB.
func (r EnseignantRefs) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
