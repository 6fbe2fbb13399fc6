package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mentor-scheduler/internal/config"
	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Programador{},
		&models.Asesoria{},
		&models.Proyecto{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// registros antigos sem estado contam como pendentes
	return db.Exec(`
        UPDATE asesorias
        SET estado = 'pendiente'
        WHERE estado IS NULL OR estado = ''
    `).Error
}
