// Command seed loads a starter item catalog with stock levels into the
// database. Running it twice is safe: existing rows are updated in place.
package main

import (
	"fmt"
	"os"

	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/itemrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string {
	return &s
}

var seedItems = []struct {
	item  itemrepo.ItemDTO
	stock int
}{
	{itemrepo.ItemDTO{ID: 1, Description: "Cardboard box, small", BaseUnit: strPtr("pcs")}, 500},
	{itemrepo.ItemDTO{ID: 2, Description: "Cardboard box, large", BaseUnit: strPtr("pcs")}, 200},
	{itemrepo.ItemDTO{ID: 3, Description: "Bubble wrap", BaseUnit: strPtr("roll")}, 40},
	{itemrepo.ItemDTO{ID: 4, Description: "Packing tape", BaseUnit: strPtr("roll")}, 120},
	{itemrepo.ItemDTO{ID: 5, Description: "Wooden pallet", BaseUnit: strPtr("pcs")}, 30},
	{itemrepo.ItemDTO{ID: 6, Description: "Stretch film", BaseUnit: strPtr("roll")}, 25},
	{itemrepo.ItemDTO{ID: 7, Description: "Shipping label sheet", BaseUnit: nil}, 1000},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	for _, seed := range seedItems {
		itemDTO := seed.item
		if err = db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&itemDTO).Error; err != nil {
			log.Fatalf("Error seeding item %d: %v", seed.item.ID, err)
		}

		stockDTO := itemrepo.StockDTO{ItemNo: seed.item.ID, QuantityOnHand: seed.stock}
		if err = db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&stockDTO).Error; err != nil {
			log.Fatalf("Error seeding stock for item %d: %v", seed.item.ID, err)
		}
	}

	log.Infof("Seeded %d items with stock levels", len(seedItems))
}
