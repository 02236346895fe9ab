package services

import (
	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
)

type OnlineOrderService struct {
	db *gorm.DB
}

func NewOnlineOrderService(db *gorm.DB) *OnlineOrderService {
	return &OnlineOrderService{db: db}
}

// Create prices the requested lines server-side, the same snapshot rule as
// staff orders: the stored price is whatever the catalog said at placement.
func (s *OnlineOrderService) Create(userID uint, input dtos.OnlineOrderInput) (*models.OnlineOrder, error) {
	order := models.OnlineOrder{
		UserID: userID,
		Status: models.OnlineOrderPlaced,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		lines, _, err := priceLines(tx, input.Items, true)
		if err != nil {
			return err
		}

		var total float64
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
			order.Items = append(order.Items, models.OnlineOrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}
		order.Total = total

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OnlineOrderService) Get(id uint) (*models.OnlineOrder, error) {
	var order models.OnlineOrder
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, apperrors.NotFoundf("online order %d", id)
	}
	return &order, nil
}

// Confirm records the gateway's payment id once the payment collaborator
// has verified it.
func (s *OnlineOrderService) Confirm(id uint, paymentID string) error {
	result := s.db.Model(&models.OnlineOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.OnlineOrderConfirmed,
			"payment_id": paymentID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("online order %d", id)
	}
	return nil
}

func (s *OnlineOrderService) ListForUser(userID uint) ([]models.OnlineOrder, error) {
	var orders []models.OnlineOrder
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
