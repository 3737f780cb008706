package specification

import "gorm.io/gorm"

// DefaultNotebook selects the single notebook flagged for automatic
// assignment of new notes. Migration enforces at most one per user.
type DefaultNotebook struct{}

func (s DefaultNotebook) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", true)
}
