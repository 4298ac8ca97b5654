package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"turnos-backend/internal/config"
	"turnos-backend/internal/database"
	"turnos-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TurnoData struct {
	Date       string  `yaml:"date"`
	PersonID   *string `yaml:"person_id,omitempty"`
	ShiftType  string  `yaml:"shift_type,omitempty"`
	StartTime  *string `yaml:"start_time,omitempty"`
	EndTime    *string `yaml:"end_time,omitempty"`
	IsVacation bool    `yaml:"is_vacation,omitempty"`
	Notes      string  `yaml:"notes,omitempty"`
}

type TurnosFile struct {
	Turnos []TurnoData `yaml:"turnos"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadTurnosFromYAML(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadTurnosFromYAML(db *gorm.DB, dataDir string) error {
	path := filepath.Join(dataDir, "turnos.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No %s found, nothing to load", path)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file TurnosFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created, updated := 0, 0
	for _, item := range file.Turnos {
		turno := models.Turno{
			Date:       item.Date,
			PersonID:   item.PersonID,
			ShiftType:  models.ShiftType(item.ShiftType),
			StartTime:  item.StartTime,
			EndTime:    item.EndTime,
			IsVacation: item.IsVacation,
			Notes:      item.Notes,
		}

		var existing models.Turno
		query := db.Where("date = ?", item.Date)
		if item.PersonID != nil && *item.PersonID != "" {
			query = query.Where("person_id = ?", *item.PersonID)
		} else {
			query = query.Where("person_id IS NULL")
		}

		err := query.First(&existing).Error
		switch {
		case err == nil:
			turno.ID = existing.ID
			turno.CreatedAt = existing.CreatedAt
			if err := db.Save(&turno).Error; err != nil {
				return fmt.Errorf("failed to update turno %s: %w", item.Date, err)
			}
			updated++
		case err == gorm.ErrRecordNotFound:
			turno.ID = uuid.New()
			if err := db.Create(&turno).Error; err != nil {
				return fmt.Errorf("failed to create turno %s: %w", item.Date, err)
			}
			created++
		default:
			return fmt.Errorf("failed to look up turno %s: %w", item.Date, err)
		}
	}

	log.Printf("Loaded %d turnos (%d created, %d updated)", len(file.Turnos), created, updated)
	return nil
}
