package infrastructures

import (
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(config *AppConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Student{},
		&models.DuesWeek{},
		&models.DuesStatus{},
		&models.CashEntry{},
		&models.PaymentTransaction{},
		&models.GatewayEvent{},
		&models.ScheduleEntry{},
		&models.Task{},
	)
	if err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
