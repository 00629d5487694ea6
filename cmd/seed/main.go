// Command seed loads the food catalog from a JSON file. The catalog has no
// write path through the API; this is the out-of-band population channel.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/ankit-0705/Macrology/config"
	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/pkg/logger"
)

func main() {
	path := flag.String("file", "data/foods.json", "path to the food catalog JSON file")
	flag.Parse()

	log := logger.NewDevelopment()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalw("failed to read catalog file", "file", *path, "error", err)
	}

	var foods []models.FoodItem
	if err := json.Unmarshal(raw, &foods); err != nil {
		log.Fatalw("failed to parse catalog file", "file", *path, "error", err)
	}

	var created, skipped int
	for _, f := range foods {
		var count int64
		if err := db.Model(&models.FoodItem{}).Where("food_name = ?", f.FoodName).Count(&count).Error; err != nil {
			log.Fatalw("catalog lookup failed", "food", f.FoodName, "error", err)
		}
		if count > 0 {
			skipped++
			continue
		}
		f.ID = 0
		if err := db.Create(&f).Error; err != nil {
			log.Fatalw("failed to insert food", "food", f.FoodName, "error", err)
		}
		created++
	}

	log.Infow("catalog seeded", "created", created, "skipped", skipped)
}
