package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	return open(postgres.Open(cfg.DBUrl), &gorm.Config{PrepareStmt: true}, log)
}

var migrate = Migrate

// open configures the pool and migrates. The pool is closed on failure.
func open(dial gorm.Dialector, gcfg *gorm.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready", zap.Int("counters", len(ids.Counters)))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Pharmacy{},
		&models.Medicine{},
		&models.Appointment{},
		&models.Order{},
		&models.Counter{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for name := range ids.Counters {
		if err := db.Exec(
			`INSERT INTO counters (id, last_value) VALUES (?, 0) ON CONFLICT (id) DO NOTHING`,
			name,
		).Error; err != nil {
			return fmt.Errorf("seed counter %s: %w", name, err)
		}
	}

	// Two bookings for one doctor and date may never share a minute.
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap') THEN
				ALTER TABLE appointments ADD CONSTRAINT appointments_no_overlap
				EXCLUDE USING gist (
					doctor_id WITH =,
					date WITH =,
					int4range(start_minute, end_minute) WITH &&
				);
			END IF;
		END $$`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("overlap constraint: %w", err)
		}
	}

	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
