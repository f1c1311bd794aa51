package services

import (
	"log"
	"os"
)

// Cloudinary is the shared upload client, set once at boot.
var Cloudinary *CloudinaryService

// InitCloudinary builds the shared client from CLOUDINARY_* env vars.
func InitCloudinary() {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Fatal("❌ CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET must be set in .env")
	}

	svc, err := NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
	}

	Cloudinary = svc
	log.Println("✅ Cloudinary initialized")
}
