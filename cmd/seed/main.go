package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the first admin account and a starter catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VIRAGWEB - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.Rating{},
		&models.Tip{},
		&models.Faq{},
		&models.LoginEvent{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedAdmin()
	seedProducts()
	seedFaqs()

	fmt.Println()
	fmt.Println("✅ Seeding complete")
}

func seedAdmin() {
	email, password, firstname, lastname := getAdminCredentials()

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Email:         email,
		PasswordHash:  string(hash),
		Firstname:     firstname,
		Lastname:      lastname,
		Admin:         true,
		Provider:      "password",
		EmailVerified: true,
	}
	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Admin account created: %s", email)
}

func getAdminCredentials() (email, password, firstname, lastname string) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin email: ")
	email, _ = reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		log.Fatal("Email is required")
	}

	fmt.Print("Admin password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimSpace(string(passwordBytes))
	if len(password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	fmt.Print("First name: ")
	firstname, _ = reader.ReadString('\n')
	firstname = strings.TrimSpace(firstname)

	fmt.Print("Last name: ")
	lastname, _ = reader.ReadString('\n')
	lastname = strings.TrimSpace(lastname)

	return email, password, firstname, lastname
}

func seedProducts() {
	products := []models.Product{
		{Name: "Aloe Vera", Description: "Igenytelen pozsgas, vilagos helyre.", Price: 3490, Category: models.CategoryList{"Szobanövény", "Pozsgás"}, Sales: false, Featured: true, Slug: "aloe-vera"},
		{Name: "Bazsalikom", Description: "Friss fuszernoveny konyhaba, erkelyre.", Price: 990, Category: models.CategoryList{"Fűszernövény"}, Sales: true, Featured: false, Slug: "bazsalikom"},
		{Name: "Levendula", Description: "Illatos evelo, napos helyre.", Price: 1890, Category: models.CategoryList{"Évelő", "Kerti növény"}, Sales: false, Featured: true, Slug: "levendula"},
		{Name: "Monstera Deliciosa", Description: "Latvanyos szobanoveny nagy levelekkel.", Price: 7990, Category: models.CategoryList{"Szobanövény"}, Sales: false, Featured: true, Slug: "monstera-deliciosa"},
		{Name: "Muskátli", Description: "Klasszikus balkonnoveny, bo viragzassal.", Price: 1290, Category: models.CategoryList{"Balkonnövény"}, Sales: true, Featured: false, Slug: "muskatli"},
		{Name: "Orchidea", Description: "Elegans lepkeorchidea cserepben.", Price: 5490, Category: models.CategoryList{"Szobanövény", "Virágzó"}, Sales: false, Featured: false, Slug: "orchidea"},
		{Name: "Rozmaring", Description: "Mediterran fuszernoveny, szarazsagturo.", Price: 1190, Category: models.CategoryList{"Fűszernövény"}, Sales: false, Featured: false, Slug: "rozmaring"},
		{Name: "Vörös rózsa csokor", Description: "10 szalas vagott rozsacsokor.", Price: 8990, Category: models.CategoryList{"Vágott virág", "Csokor"}, Sales: false, Featured: true, Slug: "voros-rozsa-csokor"},
		{Name: "Tulipán csokor", Description: "Szezonalis tulipancsokor vegyes szinekben.", Price: 4490, Category: models.CategoryList{"Vágott virág", "Csokor"}, Sales: true, Featured: false, Slug: "tulipan-csokor"},
		{Name: "Kaktusz mix", Description: "Harom kis kaktusz egy talban.", Price: 2490, Category: models.CategoryList{"Szobanövény", "Pozsgás"}, Sales: false, Featured: false, Slug: "kaktusz-mix"},
	}

	for i := range products {
		var existing models.Product
		err := config.Gorm.Where("slug = ?", products[i].Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		if err := config.Gorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(products))
}

func seedFaqs() {
	faqs := []models.Faq{
		{Question: "Mennyi a szállítási idő?", Answer: "Budapesten 1-2 munkanap, vidéken 2-3 munkanap."},
		{Question: "Hogyan öntözzem a pozsgásokat?", Answer: "Ritkán, de alaposan; a földjük két öntözés között száradjon ki."},
		{Question: "Van személyes átvétel?", Answer: "Igen, üzletünkben nyitvatartási időben."},
	}

	for i := range faqs {
		var existing models.Faq
		err := config.Gorm.Where("question = ?", faqs[i].Question).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		if err := config.Gorm.Create(&faqs[i]).Error; err != nil {
			log.Fatalf("Failed to seed faq: %v", err)
		}
	}
	log.Printf("✓ Seeded %d FAQ entries", len(faqs))
}
