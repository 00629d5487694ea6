package models

import "time"

// Meal slots a log entry can belong to.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMeal reports whether m is one of the three meal slots.
func ValidMeal(m string) bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// MacroLog is one "user ate food for meal on date" record. The food name
// and macro values are copied at logging time rather than referenced, so
// later catalog edits never rewrite history. FoodID optionally points back
// at the originating catalog row.
type MacroLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	FoodName   string    `gorm:"not null" json:"food_name"`
	FoodID     *uint     `json:"foodId,omitempty"`
	EnergyKcal float64   `gorm:"default:0" json:"energy_kcal"`
	ProteinG   float64   `gorm:"default:0" json:"protein_g"`
	FatG       float64   `gorm:"default:0" json:"fat_g"`
	CarbG      float64   `gorm:"default:0" json:"carb_g"`
	Meal       string    `gorm:"size:16;not null" json:"meal"`
	Date       string    `gorm:"size:10;index;not null" json:"date"` // ISO YYYY-MM-DD
	CreatedAt  time.Time `json:"createdAt"`
}
