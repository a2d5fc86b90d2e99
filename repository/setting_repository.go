package repository

import (
	"strconv"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) Get(key string) (string, error) {
	var s entity.Setting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

// GetDecimal reads a numeric setting, falling back when the row is missing or
// unparsable.
func (r *SettingRepository) GetDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	v, err := r.Get(key)
	if err != nil {
		return fallback
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return fallback
	}
	return d
}

func (r *SettingRepository) GetBool(key string, fallback bool) bool {
	v, err := r.Get(key)
	if err != nil {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
