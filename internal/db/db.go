package db

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/cesta-amigo/internal/config"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

const slowQuery = 500 * time.Millisecond

func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger: gormlogger.New(gormWriter{log}, gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "db: connect")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "db: sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Models lista as tabelas na ordem de criação (perfis antes das FKs).
func Models() []any {
	return []any{
		&models.Profile{},
		&models.Client{},
		&models.Appointment{},
		&models.Basket{},
		&models.Order{},
		&models.AuditLog{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "db: migrate")
	}

	// busca de login é case-insensitive
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username_lower
		ON profiles (LOWER(username))
	`).Error; err != nil {
		return errors.Wrap(err, "db: username index")
	}

	return nil
}

// gormWriter manda o log do gorm (queries lentas, erros) para o zerolog.
type gormWriter struct {
	l zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.l.Warn().Str("component", "gorm").Msgf(format, args...)
}
