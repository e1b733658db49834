package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	CloudinaryFolder       string
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	_ = godotenv.Load()

	return &Config{
		DBDriver:               getEnv("DB_DRIVER", "sqlite"),
		DBSource:               getEnv("DB_SOURCE", "urbanwatch.db"),
		Port:                   getEnv("PORT", "8000"),
		JWTSecret:              getEnv("JWT_SECRET", "changeme"),
		JWTTTL:                 time.Duration(24) * time.Hour,
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryFolder:       getEnv("CLOUDINARY_FOLDER", "concerns"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
