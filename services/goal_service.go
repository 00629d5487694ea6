package services

import (
	"context"
	"errors"
	"time"

	"github.com/ankit-0705/Macrology/models"
	"github.com/ankit-0705/Macrology/utils"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Get returns the user's goal record, or a zero-valued one if none was set.
func (s *GoalService) Get(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

type GoalInput struct {
	EnergyKcal float64 `json:"energy_kcal"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbG      float64 `json:"carb_g"`
}

func (s *GoalService) Upsert(ctx context.Context, userID uint, in GoalInput) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:     userID,
			EnergyKcal: in.EnergyKcal,
			ProteinG:   in.ProteinG,
			FatG:       in.FatG,
			CarbG:      in.CarbG,
		}
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.EnergyKcal = in.EnergyKcal
	goal.ProteinG = in.ProteinG
	goal.FatG = in.FatG
	goal.CarbG = in.CarbG
	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// MacroProgress is one macro's consumed-vs-target line on the dashboard.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

type dayTotals struct {
	EnergyKcal float64
	ProteinG   float64
	FatG       float64
	CarbG      float64
}

// Progress sums the user's log entries for the given date (today when empty)
// and reports consumed/goal/percent per macro, percent capped at 1.
func (s *GoalService) Progress(ctx context.Context, userID uint, date string) (map[string]MacroProgress, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if !utils.IsISODate(date) {
		return nil, utils.ValidationErrors{{Field: "date", Message: "Date must be in YYYY-MM-DD form"}}
	}

	var totals dayTotals
	err := s.db.WithContext(ctx).Model(&models.MacroLog{}).
		Select("COALESCE(SUM(energy_kcal),0) AS energy_kcal, COALESCE(SUM(protein_g),0) AS protein_g, COALESCE(SUM(fat_g),0) AS fat_g, COALESCE(SUM(carb_g),0) AS carb_g").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	goal, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return map[string]MacroProgress{
		"energy_kcal": {Consumed: totals.EnergyKcal, Goal: goal.EnergyKcal, Percent: pct(totals.EnergyKcal, goal.EnergyKcal)},
		"protein_g":   {Consumed: totals.ProteinG, Goal: goal.ProteinG, Percent: pct(totals.ProteinG, goal.ProteinG)},
		"fat_g":       {Consumed: totals.FatG, Goal: goal.FatG, Percent: pct(totals.FatG, goal.FatG)},
		"carb_g":      {Consumed: totals.CarbG, Goal: goal.CarbG, Percent: pct(totals.CarbG, goal.CarbG)},
	}, nil
}
