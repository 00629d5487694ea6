package models

// FoodItem is a catalog entry with per-serving macro values.
// The catalog is read-mostly reference data, populated out of band
// by the seeder; the API never creates or mutates rows here.
type FoodItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	FoodName   string  `gorm:"index;not null" json:"food_name"`
	EnergyKcal float64 `gorm:"default:0" json:"energy_kcal"`
	ProteinG   float64 `gorm:"default:0" json:"protein_g"`
	FatG       float64 `gorm:"default:0" json:"fat_g"`
	CarbG      float64 `gorm:"default:0" json:"carb_g"`
}
