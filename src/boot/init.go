package boot

import (
	"log"
	"shareit/src/db"
	"shareit/src/models"
)

func InitDb() {
	d := db.GetDb()
	err := d.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
}
