package configs

import (
	"log"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedOperator creates the first operator account from env, once.
func SeedOperator() error {
	db := DB()
	email := getEnv("OPERATOR_EMAIL", "")
	pass := getEnv("OPERATOR_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding operator: missing OPERATOR_EMAIL/OPERATOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("operator already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	operator := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Operator",
		LastName:  "Seed",
		Role:      entity.RoleOperator,
	}
	return db.Create(&operator).Error
}

// SeedLookups inserts the default lookup rows.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.DeviceType{}, entity.DeviceType{TypeName: "CCTV"})
	db.FirstOrCreate(&entity.DeviceType{}, entity.DeviceType{TypeName: "IoT Sensor"})

	log.Println("lookup tables seeded")
	return nil
}
