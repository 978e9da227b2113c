package model

// User is a registered web user in table users.
type User struct {
	UserID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(255);not null"             json:"-"`
	Name     string `gorm:"type:varchar(255);not null"             json:"name"`
	Role     string `gorm:"type:varchar(50);not null;default:student" json:"role"`
	BaseModel
}

// TableName overrides the table name.
func (User) TableName() string { return "users" }
