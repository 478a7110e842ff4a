package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/api"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

// @title Swimming Project API
// @version 1.0
// @description Multi-tenant bookkeeping backend for swimming pool rentals.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.User{}, &models.Profile{}, &models.Pool{}, &models.Shop{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initSuperuser()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// initSuperuser seeds the first staff account from the environment so a
// fresh deployment is administrable without a shell into the database.
func initSuperuser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	result := database.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		log.Println("Superuser already exists.")
		return
	}

	admin, err := models.NewSuperuser(email, "Admin", "User", password, true, true)
	if err != nil {
		log.Fatalf("failed to build superuser: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash superuser password: %v", err)
	}
	admin.Password = string(hashedPassword)
	admin.Profile = &models.Profile{}

	if err := database.DB.Create(admin).Error; err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}
	log.Println("Superuser created successfully!")
}
