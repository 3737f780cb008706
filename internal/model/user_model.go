package model

import "gorm.io/datatypes"

// User maps the auth provider's `user` table. The provider owns the row
// lifecycle; this service reads and writes only the settings column.
type User struct {
	Id       string         `gorm:"type:text;primaryKey"`
	Name     string         `gorm:"type:text;not null"`
	Settings datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
}

func (User) TableName() string {
	return "user"
}
