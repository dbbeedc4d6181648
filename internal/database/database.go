package database

import (
	"fmt"
	"time"

	"estate-portal/internal/config"
	"estate-portal/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormDB wraps the GORM connection used by every data access path.
type GormDB struct {
	db *gorm.DB
}

// New opens a database connection for the configured backend
// (mysql, postgres or sqlite) and verifies it with a ping.
func New(cfg config.DatabaseConfig) (*GormDB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "mysql":
		m := cfg.MySQL
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			m.User, m.Password, m.Host, m.Port, m.Database)
		dialector = mysql.Open(dsn)
	case "postgres":
		p := cfg.Postgres
		sslmode := p.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			p.Host, p.Port, p.User, p.Password, p.Database, sslmode)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		path := cfg.SQLite.Path
		if path == "" {
			path = "estate.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}

// NewFromDB wraps an existing gorm.DB instance.
func NewFromDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

// DB returns the underlying gorm.DB instance.
func (gdb *GormDB) DB() *gorm.DB {
	return gdb.db
}

func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Session{},
		&models.Property{},
		&models.PropertyImage{},
	)
}
