package main

import (
	"log"
	"os"

	"sellerkit-be/internal/model"
	"sellerkit-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func seedTools(db *gorm.DB) {
	tools := []model.Tool{
		{
			Name:        "Keyword Research",
			Description: "Find high-volume, low-competition keywords for Amazon and Flipkart listings.",
			Icon:        "search",
			Price:       4999,
			TrialDays:   7,
			Category:    "keyword-research",
			IsActive:    true,
		},
		{
			Name:        "Listing Optimizer",
			Description: "Optimize product titles and bullet points with keyword coverage scoring.",
			Icon:        "file-text",
			Price:       7999,
			TrialDays:   7,
			Category:    "listing-optimization",
			IsActive:    true,
		},
	}

	for _, tool := range tools {
		err := db.Where("name = ?", tool.Name).FirstOrCreate(&tool).Error
		if err != nil {
			log.Printf("Warn: Failed to seed tool %q: %v", tool.Name, err)
		}
	}
	log.Printf("Seeded %d tools", len(tools))
}

func seedCmsContent(db *gorm.DB) {
	sections := []model.CmsContent{
		{
			Section: "hero",
			Content: datatypes.JSON([]byte(`{"title":"Grow your marketplace sales","subtitle":"Keyword research and listing tools for Amazon and Flipkart sellers","cta":"Start free trial"}`)),
		},
		{
			Section: "features",
			Content: datatypes.JSON([]byte(`{"items":[{"title":"Keyword Research","description":"Search volume and competition for both marketplaces"},{"title":"Usage Analytics","description":"Track searches, exports and API calls"}]}`)),
		},
	}

	for _, section := range sections {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}},
			DoNothing: true,
		}).Create(&section).Error
		if err != nil {
			log.Printf("Warn: Failed to seed cms section %q: %v", section.Section, err)
		}
	}
	log.Printf("Seeded %d cms sections", len(sections))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedTools(db)
	seedCmsContent(db)

	log.Println("Success: Seeding completed.")
}
