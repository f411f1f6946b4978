package database

import (
	"log"
	"time"

	"agropazar-backend/internal/config"
	"agropazar-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// Havuz limitleri: 20 bağlantı, 30s idle. connect_timeout DSN'de.
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Bağlantı havuzuna erişilemedi: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Farmer{},
		&models.Vendor{},
		&models.Customer{},
		&models.Crop{},
		&models.FarmerCrop{},
		&models.FarmerInventory{},
		&models.Product{},
		&models.VendorProduct{},
		&models.VendorInventory{},
		&models.FarmerCustomerOrder{},
		&models.VendorFarmerOrder{},
		&models.Transaction{},
		&models.Feedback{},
		&models.FarmerCustomerDispute{},
		&models.VendorFarmerDispute{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")

	if cfg.SeedDemoData {
		if err := SeedDemoData(); err != nil {
			log.Printf("[WARN] Demo verisi yüklenemedi: %v", err)
		}
	}
}
