package database

import (
	"fmt"
	"os"

	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by DATABASE_URL. The URL scheme picks the
// dialector: mysql, sqlserver/mssql, or sqlite for local development.
func Connect() (*gorm.DB, error) {
	rawURL := os.Getenv("DATABASE_URL")
	if rawURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment variables")
	}

	u, err := dburl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	var dialector gorm.Dialector
	switch u.Driver {
	case "mysql":
		dialector = mysql.Open(u.DSN + "?charset=utf8mb4&parseTime=True&loc=Local")
	case "sqlserver":
		dialector = sqlserver.Open(rawURL)
	case "sqlite3":
		dialector = sqlite.Open(u.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
