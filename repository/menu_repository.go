package repository

import (
	"github.com/Hsharma41126/new-restorant/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetItemForOrder fetches the fields pricing needs: price, availability,
// subcategory.
func (r *MenuRepository) GetItemForOrder(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, is_available, sub_category_id").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CategoryNamesForItems returns the distinct category names the given menu
// items belong to, via their subcategories.
func (r *MenuRepository) CategoryNamesForItems(itemIDs []uint) ([]string, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var names []string
	err := r.DB.Table("menu_items AS m").
		Select("DISTINCT c.name").
		Joins("JOIN sub_categories s ON s.id = m.sub_category_id").
		Joins("JOIN categories c ON c.id = s.category_id").
		Where("m.id IN ?", itemIDs).
		Scan(&names).Error
	return names, err
}

// NamesForItems maps menu item ids to their current names, for receipts.
func (r *MenuRepository) NamesForItems(itemIDs []uint) (map[uint]string, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var rows []struct {
		ID   uint
		Name string
	}
	err := r.DB.Model(&entity.MenuItem{}).
		Select("id, name").
		Where("id IN ?", itemIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Name
	}
	return out, nil
}

// CategoryRefsForOrder returns the category and subcategory ids touched by an
// order's lines. The printer router matches mappings against these.
func (r *MenuRepository) CategoryRefsForOrder(orderID uint) (categoryIDs, subCategoryIDs []uint, err error) {
	var rows []struct {
		CategoryID    uint
		SubCategoryID uint
	}
	err = r.DB.Table("order_items AS oi").
		Select("DISTINCT s.category_id, s.id AS sub_category_id").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Joins("JOIN sub_categories s ON s.id = m.sub_category_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	seen := make(map[uint]bool)
	for _, row := range rows {
		subCategoryIDs = append(subCategoryIDs, row.SubCategoryID)
		if !seen[row.CategoryID] {
			seen[row.CategoryID] = true
			categoryIDs = append(categoryIDs, row.CategoryID)
		}
	}
	return categoryIDs, subCategoryIDs, nil
}
