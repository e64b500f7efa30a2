package db

import (
	"time"

	"compass-backend/internal/domain/application"
	"compass-backend/internal/domain/catalog"
	"compass-backend/internal/domain/like"
	"compass-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Needed so duplicate-key violations surface as gorm.ErrDuplicatedKey
		// (category find-or-create and like insert races depend on it).
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the service owns, including the
// two composite-key join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&catalog.Category{},
		&catalog.Tool{},
		&application.Application{},
		&application.CategoryLink{},
		&like.Like{},
	)
}
