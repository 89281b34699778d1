package db

import (
	"fmt"
	"log"

	"github.com/camilon-dental/clinic-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Service{},
		&models.Schedule{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
