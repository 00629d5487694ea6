package services

import (
	"context"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"gorm.io/gorm"
)

type MacroService struct {
	db *gorm.DB
}

func NewMacroService(db *gorm.DB) *MacroService {
	return &MacroService{db: db}
}

// AddEntryInput mirrors the wire payload of POST /api/macros/add.
type AddEntryInput struct {
	UserID     uint    `json:"userId"`
	FoodName   string  `json:"food_name"`
	FoodID     *uint   `json:"foodId"`
	EnergyKcal float64 `json:"energy_kcal"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbG      float64 `json:"carb_g"`
	Meal       string  `json:"meal"`
	Date       string  `json:"date"`
}

// AddEntry creates one log record. The macro values are stored as supplied
// by the caller and are not re-derived from FoodID; the dashboard lets users
// log edited portions, so the values can legitimately differ from the catalog.
func (s *MacroService) AddEntry(ctx context.Context, in AddEntryInput) (*models.MacroLog, error) {
	var verrs utils.ValidationErrors
	if in.UserID == 0 {
		verrs = append(verrs, utils.FieldError{Field: "userId", Message: "User ID is required"})
	}
	if in.FoodName == "" {
		verrs = append(verrs, utils.FieldError{Field: "food_name", Message: "Food name is required"})
	}
	if !models.ValidMeal(in.Meal) {
		verrs = append(verrs, utils.FieldError{Field: "meal", Message: "Meal must be breakfast, lunch or dinner"})
	}
	if !utils.IsISODate(in.Date) {
		verrs = append(verrs, utils.FieldError{Field: "date", Message: "Date must be in YYYY-MM-DD form"})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	entry := models.MacroLog{
		UserID:     in.UserID,
		FoodName:   in.FoodName,
		FoodID:     in.FoodID,
		EnergyKcal: in.EnergyKcal,
		ProteinG:   in.ProteinG,
		FatG:       in.FatG,
		CarbG:      in.CarbG,
		Meal:       in.Meal,
		Date:       in.Date,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns a user's log. With date set it matches that day
// exactly; otherwise with year set it matches [year-01-01, year-12-31],
// which is a correct range compare because dates are stored as ISO strings.
// Sort order is date, then meal as a plain string (breakfast < dinner <
// lunch — kept as the original behaves), then creation time.
func (s *MacroService) ListEntries(ctx context.Context, userID uint, date, year string) ([]models.MacroLog, error) {
	if userID == 0 {
		return nil, utils.ValidationErrors{{Field: "userId", Message: "User ID is required"}}
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	} else if year != "" {
		q = q.Where("date BETWEEN ? AND ?", year+"-01-01", year+"-12-31")
	}

	logs := []models.MacroLog{}
	err := q.Order("date ASC, meal ASC, created_at ASC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteUserEntries removes every entry owned by userID and reports the count.
func (s *MacroService) DeleteUserEntries(ctx context.Context, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.MacroLog{})
	return res.RowsAffected, res.Error
}

// DeleteAllEntries wipes the whole log for every user. Destructive and
// unscoped; routes expose it only behind the admin guard.
func (s *MacroService) DeleteAllEntries(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.MacroLog{})
	return res.RowsAffected, res.Error
}
