package main

import (
	"database/sql"
	"flag"
	"log"

	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/models"
	"school-records/app/routes/auth"
)

// Seeds an account directly, bypassing the HTTP API. Intended for creating
// the first admin on a fresh deployment.
func main() {
	username := flag.String("username", "", "account username")
	password := flag.String("password", "", "account password")
	role := flag.String("role", "admin", "account role (admin or student)")
	roll := flag.String("roll", "", "roll number of the student to link (student role only)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Both -username and -password are required")
	}
	r := models.Role(*role)
	if !r.Valid() {
		log.Fatalf("Unknown role %q", *role)
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	taken, err := database.UsernameExists(db, *username)
	if err != nil {
		log.Fatal("Failed to check username:", err)
	}
	if taken {
		log.Fatalf("Username %q is already taken", *username)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:     *username,
		PasswordHash: hash,
		Role:         r,
	}

	if r == models.RoleStudent && *roll != "" {
		student, err := database.GetStudentByRollNumber(db, *roll)
		if err != nil {
			if err == sql.ErrNoRows {
				log.Fatalf("No student with roll number %q to link", *roll)
			}
			log.Fatal("Failed to look up student:", err)
		}
		user.StudentID = &student.ID
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("Created %s account %s (id %s)", user.Role, user.Username, user.ID)
}
