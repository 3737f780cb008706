package entity

import "gorm.io/datatypes"

// User identities are created and mutated by the external auth provider.
// This service only ever touches the settings document.
type User struct {
	Id       string
	Name     string
	Settings datatypes.JSON
}
