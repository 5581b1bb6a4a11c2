package main

import (
	"log"

	"school-records/app/config"
	"school-records/app/database"
)

func main() {
	log.Println("Starting migration...")

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully")
}
