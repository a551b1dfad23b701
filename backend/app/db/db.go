package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Connect opens the panel database. TranslateError is required: the queue
// relies on gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated instead of
// driver-specific errors.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "", "sqlite":
		dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)
		return gorm.Open(sqlite.Open(dsn), gcfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
