package site

import "gorm.io/gorm"

// Scope constrains a query to one construction site.
func Scope(siteID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("site_id = ?", siteID)
	}
}
