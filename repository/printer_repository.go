package repository

import (
	"errors"

	"github.com/Hsharma41126/new-restorant/entity"
	"gorm.io/gorm"
)

type PrinterRepository struct {
	DB *gorm.DB
}

func NewPrinterRepository(db *gorm.DB) *PrinterRepository {
	return &PrinterRepository{DB: db}
}

func (r *PrinterRepository) Get(id uint) (*entity.Printer, error) {
	var p entity.Printer
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrinterRepository) List() ([]entity.Printer, error) {
	var out []entity.Printer
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

// FindByMapping picks the first active+online printer with a category mapping
// matching the given subcategories, or the bare categories for mappings with
// no subcategory. Lowest printer id wins, which keeps selection deterministic.
func (r *PrinterRepository) FindByMapping(categoryIDs, subCategoryIDs []uint) (*entity.Printer, error) {
	if len(categoryIDs) == 0 && len(subCategoryIDs) == 0 {
		return nil, nil
	}
	var p entity.Printer
	err := r.DB.Table("printers AS p").
		Select("p.*").
		Joins("JOIN printer_category_mappings m ON m.printer_id = p.id AND m.deleted_at IS NULL").
		Where("p.is_active = ? AND p.is_online = ?", true, true).
		Where("m.sub_category_id IN ? OR (m.sub_category_id IS NULL AND m.category_id IN ?)",
			subCategoryIDs, categoryIDs).
		Order("p.id ASC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByFunction is the fallback: any active+online printer with the role.
func (r *PrinterRepository) FindByFunction(fn entity.PrinterFunction) (*entity.Printer, error) {
	var p entity.Printer
	err := r.DB.Where("function = ? AND is_active = ? AND is_online = ?", fn, true, true).
		Order("id ASC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetOnline reflects the last dispatch/test outcome so operators can see
// which printers are down.
func (r *PrinterRepository) SetOnline(id uint, online bool) error {
	return r.DB.Model(&entity.Printer{}).
		Where("id = ?", id).
		Update("is_online", online).Error
}
