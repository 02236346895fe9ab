package services

import (
	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Preload("Ingredients").Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuService) Get(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.Preload("Ingredients").First(&item, id).Error; err != nil {
		return nil, apperrors.NotFoundf("menu item %d", id)
	}
	return &item, nil
}

func (s *MenuService) Create(input dtos.MenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		IsAvailable: true,
		ImageURL:    input.ImageURL,
		Ingredients: toIngredients(input.Ingredients),
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	cost, err := s.costOfGoods(item.Ingredients)
	if err != nil {
		return nil, err
	}
	item.CostOfGoods = cost

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Update(id uint, input dtos.MenuItemInput) (*models.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Category = input.Category
	item.Price = input.Price
	item.ImageURL = input.ImageURL
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	ingredients := toIngredients(input.Ingredients)
	cost, err := s.costOfGoods(ingredients)
	if err != nil {
		return nil, err
	}
	item.CostOfGoods = cost

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].MenuItemID = id
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		item.Ingredients = nil
		return tx.Save(item).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	result := s.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("menu item %d", id)
	}
	return s.db.Where("menu_item_id = ?", id).Delete(&models.Ingredient{}).Error
}

// costOfGoods prices the bill-of-materials at current weighted-average stock
// cost. Ingredients pointing at missing stock rows contribute nothing rather
// than failing the save.
func (s *MenuService) costOfGoods(ingredients []models.Ingredient) (float64, error) {
	var total float64
	for _, ingredient := range ingredients {
		var stockItem models.StockItem
		if err := s.db.First(&stockItem, ingredient.StockItemID).Error; err != nil {
			continue
		}
		total += stockItem.AverageCostPerUnit * ingredient.Quantity
	}
	return total, nil
}

func toIngredients(inputs []dtos.IngredientInput) []models.Ingredient {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	for _, in := range inputs {
		ingredients = append(ingredients, models.Ingredient{
			StockItemID: in.StockItemID,
			Quantity:    in.Quantity,
		})
	}
	return ingredients
}
