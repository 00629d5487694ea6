package services

import (
	"context"
	"strings"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"gorm.io/gorm"
)

const searchLimit = 20

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodSummary is what search returns: name plus macros, no identifier.
// Catalog entries are meant to be copied into a log entry, not referenced.
type FoodSummary struct {
	FoodName   string  `json:"food_name"`
	EnergyKcal float64 `json:"energy_kcal"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbG      float64 `json:"carb_g"`
}

// Search does a case-insensitive substring match on food names, capped at
// 20 rows in the database's natural order.
func (s *FoodService) Search(ctx context.Context, query string) ([]FoodSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ValidationErrors{{Field: "query", Message: "Search query is required"}}
	}

	foods := []FoodSummary{}
	err := s.db.WithContext(ctx).Model(&models.FoodItem{}).
		Select("food_name, energy_kcal, protein_g, fat_g, carb_g").
		Where("LOWER(food_name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(searchLimit).
		Scan(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}
