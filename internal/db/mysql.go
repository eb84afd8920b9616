package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"los/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. Roles go first so the users.RoleID
// foreign key has a target.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Role{}, &model.User{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table owned by the service.
func Reset(db *gorm.DB) error {
	for _, table := range []interface{}{&model.User{}, &model.Role{}} {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
