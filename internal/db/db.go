package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/config"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

const sqlitePath = "reservations.db"

// NewDB opens PostgreSQL when DATABASE_URL is set, and falls back to an
// embedded SQLite file for local development. The backend split stays
// here: everything above sees only *gorm.DB or the booking repository.
func NewDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DBUrl != "" {
		dialector = postgres.Open(cfg.DBUrl)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultServices(db)

	if cfg.DBUrl != "" {
		log.Println("database ready (PostgreSQL)")
	} else {
		log.Println("database ready (SQLite)")
	}

	return db
}

func seedDefaultServices(db *gorm.DB) {
	defaults := []models.Service{
		{ID: "corte-clasico", Name: "Corte Clásico", Description: "Corte tradicional con tijera y máquina", Price: 15000, DurationMin: 30, Category: "clasico", Active: true},
		{ID: "fade", Name: "Fade", Description: "Degradado moderno y preciso", Price: 18000, DurationMin: 45, Category: "premium", Active: true},
		{ID: "barba", Name: "Arreglo de Barba", Description: "Perfilado y arreglo completo", Price: 12000, DurationMin: 20, Category: "clasico", Active: true},
		{ID: "corte-barba", Name: "Corte + Barba", Description: "Servicio completo", Price: 25000, DurationMin: 50, Category: "premium", Active: true},
	}

	for _, svc := range defaults {
		var existing models.Service
		err := db.Where("name = ?", svc.Name).First(&existing).Error
		if err != gorm.ErrRecordNotFound {
			continue
		}
		if err := db.Create(&svc).Error; err != nil {
			log.Printf("failed to seed service %s: %v", svc.ID, err)
		}
	}
}
