package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Fisher{},
		&Water{},
		&Session{},
		&Species{},
		&Catch{},
		&Discussion{},
		&Message{},
	)
}
