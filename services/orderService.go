package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/events"
	"bhinnashad-api/models"
	"bhinnashad-api/utils"
)

type OrderService struct {
	db      *gorm.DB
	tables  *TableService
	billing *BillingService
	events  events.Publisher
}

func NewOrderService(db *gorm.DB, tables *TableService, billing *BillingService, publisher events.Publisher) *OrderService {
	return &OrderService{db: db, tables: tables, billing: billing, events: publisher}
}

// UpdateStatusResult carries the transitioned order plus, for the pickup
// auto-settle path, the paid bill that was synthesized along the way.
type UpdateStatusResult struct {
	Order      *models.Order            `json:"order"`
	Settlement *dtos.SettlementResult   `json:"settlement,omitempty"`
}

func (s *OrderService) List(filter dtos.OrderFilter) ([]models.Order, error) {
	query := s.db.Preload("Items")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.WaiterID != 0 {
		query = query.Where("waiter_id = ?", filter.WaiterID)
	}
	if filter.TableNumber != nil {
		query = query.Where("table_number = ?", *filter.TableNumber)
	}
	if filter.OrderType != "" {
		query = query.Where("order_type = ?", filter.OrderType)
	}

	var orders []models.Order
	if err := query.Order("timestamp DESC").Limit(100).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, apperrors.NotFoundf("order %d", id)
	}
	return &order, nil
}

// Create prices every line against the current catalog and persists the
// order with those prices frozen in. Any unknown or unavailable menu item
// aborts the whole order. A manager-created order skips approval and goes
// out to the kitchen immediately. Dine-in orders occupy their table.
func (s *OrderService) Create(actorID uint, actorRole string, input dtos.CreateOrderInput) (*models.Order, error) {
	if input.OrderType == models.OrderTypeDineIn && input.TableNumber == nil {
		return nil, apperrors.Validationf("table number is required for dine-in orders")
	}

	status := models.OrderStatusPending
	if actorRole == models.RoleManager || actorRole == models.RoleAdmin {
		status = models.OrderStatusApproved
	}

	order := models.Order{
		OrderType: input.OrderType,
		Status:    status,
		WaiterID:  actorID,
	}
	if input.OrderType == models.OrderTypeDineIn {
		order.TableNumber = input.TableNumber
	}

	var itemNames []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		lines, names, err := priceLines(tx, input.Items, true)
		if err != nil {
			return err
		}
		order.Items = lines
		itemNames = names

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if order.TableNumber != nil {
			return s.tables.setStatusOn(tx, *order.TableNumber, models.TableStatusOccupied, &actorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderCreated(&order)
	if order.Status == models.OrderStatusApproved {
		s.sendKitchenTicket(&order, itemNames)
	}
	return &order, nil
}

// UpdateItems re-snapshots prices for a new line set. Only pending and
// approved orders are editable; re-pricing a served or billed order would
// silently corrupt totals that are already on a bill.
func (s *OrderService) UpdateItems(orderID uint, input dtos.UpdateOrderItemsInput) (*models.Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusApproved {
		return nil, apperrors.Validationf("order %d can no longer be edited in status %s", orderID, order.Status)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		lines, _, err := priceLines(tx, input.Items, false)
		if err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = orderID
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(orderID)
}

// UpdateStatus walks one lifecycle edge. A manager (or admin) marking a
// pickup order prepared does not stop there: the order is settled on the
// spot through BillingService.SettlePickupOrder. Serving or cancelling
// re-evaluates the table's occupancy.
func (s *OrderService) UpdateStatus(orderID uint, next string, actorRole string) (*UpdateStatusResult, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, next) {
		return nil, &apperrors.InvalidTransitionError{From: order.Status, To: next}
	}

	from := order.Status

	if next == models.OrderStatusPrepared && order.OrderType == models.OrderTypePickup &&
		(actorRole == models.RoleManager || actorRole == models.RoleAdmin) {
		settlement, err := s.billing.SettlePickupOrder(order)
		if err != nil {
			return nil, err
		}
		s.events.OrderStatusChanged(order, from, models.OrderStatusBilled)
		return &UpdateStatusResult{Order: order, Settlement: settlement}, nil
	}

	err = s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", next).Error
	if err != nil {
		return nil, err
	}
	order.Status = next

	if next == models.OrderStatusServed || next == models.OrderStatusCancelled {
		if err := s.tables.ReleaseIfIdle(order.TableNumber); err != nil {
			log.Printf("orders: release check failed after order %d -> %s: %v", orderID, next, err)
		}
	}

	s.events.OrderStatusChanged(order, from, next)
	if next == models.OrderStatusApproved {
		s.sendKitchenTicket(order, nil)
	}
	return &UpdateStatusResult{Order: order}, nil
}

// Cancel is not gated by the transition table: any order can be cancelled
// with a reason, after which the table occupancy check runs.
func (s *OrderService) Cancel(orderID uint, reason string) (*models.Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	err = s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":              models.OrderStatusCancelled,
			"cancellation_reason": reason,
		}).Error
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusCancelled
	order.CancellationReason = &reason

	if err := s.tables.ReleaseIfIdle(order.TableNumber); err != nil {
		log.Printf("orders: release check failed after cancelling order %d: %v", orderID, err)
	}

	s.events.OrderStatusChanged(order, from, models.OrderStatusCancelled)
	return order, nil
}

// Delete hard-removes an order (waiter-side retraction, no history kept)
// and re-evaluates the table.
func (s *OrderService) Delete(orderID uint) error {
	order, err := s.Get(orderID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
	if err != nil {
		return err
	}

	return s.tables.ReleaseIfIdle(order.TableNumber)
}

// priceLines resolves each requested line against the catalog and snapshots
// the current price. checkAvailability is on for order creation; edits of an
// already-accepted order only require the item to still exist.
func priceLines(tx *gorm.DB, inputs []dtos.OrderLineInput, checkAvailability bool) ([]models.OrderItem, []string, error) {
	lines := make([]models.OrderItem, 0, len(inputs))
	names := make([]string, 0, len(inputs))

	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, nil, apperrors.Validationf("quantity must be at least 1 for menu item %d", in.MenuItemID)
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, in.MenuItemID).Error; err != nil {
			return nil, nil, apperrors.NotFoundf("menu item %d", in.MenuItemID)
		}
		if checkAvailability && !menuItem.IsAvailable {
			return nil, nil, fmt.Errorf("%s: %w", menuItem.Name, apperrors.ErrUnavailable)
		}

		lines = append(lines, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   in.Quantity,
			Price:      menuItem.Price,
		})
		names = append(names, menuItem.Name)
	}

	return lines, names, nil
}

func (s *OrderService) sendKitchenTicket(order *models.Order, itemNames []string) {
	if len(itemNames) == 0 {
		for _, line := range order.Items {
			var menuItem models.MenuItem
			if err := s.db.First(&menuItem, line.MenuItemID).Error; err == nil {
				itemNames = append(itemNames, menuItem.Name)
			}
		}
	}
	go func() {
		if err := utils.SendKitchenTicket(order, itemNames); err != nil {
			log.Printf("orders: kitchen ticket for order %d failed: %v", order.ID, err)
		}
	}()
}
