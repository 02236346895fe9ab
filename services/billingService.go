package services

import (
	"log"

	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/events"
	"bhinnashad-api/models"
)

type BillingService struct {
	db     *gorm.DB
	tables *TableService
	events events.Publisher
}

func NewBillingService(db *gorm.DB, tables *TableService, publisher events.Publisher) *BillingService {
	return &BillingService{db: db, tables: tables, events: publisher}
}

func (s *BillingService) List(filter dtos.BillFilter) ([]models.Bill, error) {
	query := s.db.Model(&models.Bill{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TableNumber != nil {
		query = query.Where("table_number = ?", *filter.TableNumber)
	}

	var bills []models.Bill
	if err := query.Order("timestamp DESC").Limit(100).Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (s *BillingService) Get(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.First(&bill, id).Error; err != nil {
		return nil, apperrors.NotFoundf("bill %d", id)
	}
	return &bill, nil
}

// CreateBillForTable rolls every served order on the table into one unpaid
// bill. Orders flip served -> billed with a status-guarded update, so a
// concurrent billing attempt for the same table cannot claim the same order
// twice.
func (s *BillingService) CreateBillForTable(tableNumber int) (*models.Bill, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("table_number = ? AND status = ?", tableNumber, models.OrderStatusServed).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.ErrNothingToBill
	}

	var subtotal float64
	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		subtotal += order.Subtotal()
		orderIDs = append(orderIDs, order.ID)
	}

	// Best-effort attribution: the first matched order's waiter owns the bill.
	bill := models.Bill{
		TableNumber: &tableNumber,
		OrderIDs:    orderIDs,
		WaiterID:    &orders[0].WaiterID,
		Subtotal:    subtotal,
		Tax:         0, // tax is included in item prices
		Total:       subtotal,
		Status:      models.BillStatusUnpaid,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Order{}).
			Where("id IN ? AND status = ?", orderIDs, models.OrderStatusServed).
			Update("status", models.OrderStatusBilled)
		if result.Error != nil {
			return result.Error
		}
		// A competing billing request flipped one of our orders between the
		// read above and this update. Roll the bill back instead of committing
		// a second bill over the same orders.
		if result.RowsAffected != int64(len(orderIDs)) {
			return apperrors.ErrAlreadyBilled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.BillCreated(&bill)
	return &bill, nil
}

// SettleBill marks a bill paid and applies the dependent effects: the bill's
// table (if any) is released unconditionally, and stock is depleted through
// each sold item's bill-of-materials. The paid flag is committed first and is
// never rolled back; release and depletion failures are reported, not fatal.
func (s *BillingService) SettleBill(billID uint) (*dtos.SettlementResult, error) {
	var bill models.Bill
	if err := s.db.First(&bill, billID).Error; err != nil {
		return nil, apperrors.NotFoundf("bill %d", billID)
	}
	if bill.Status == models.BillStatusPaid {
		return nil, apperrors.ErrAlreadyPaid
	}

	// Status-guarded update: losing a settlement race reports AlreadyPaid
	// instead of applying the side effects twice.
	result := s.db.Model(&models.Bill{}).
		Where("id = ? AND status = ?", billID, models.BillStatusUnpaid).
		Update("status", models.BillStatusPaid)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrAlreadyPaid
	}
	bill.Status = models.BillStatusPaid

	if bill.TableNumber != nil {
		// Every order on the table has just been billed, so no idle check.
		if err := s.tables.SetStatus(*bill.TableNumber, models.TableStatusAvailable, nil); err != nil {
			log.Printf("billing: failed to release table %d after bill %d: %v", *bill.TableNumber, billID, err)
		}
	}

	skipped := s.depleteStock(&bill)

	s.events.BillPaid(&bill)
	return &dtos.SettlementResult{Bill: &bill, Skipped: skipped}, nil
}

// SettlePickupOrder is the composite behind the manager's pickup "prepared"
// action: the order goes straight to billed, a single-order bill with no
// table number is created, and the bill is settled on the spot.
func (s *BillingService) SettlePickupOrder(order *models.Order) (*dtos.SettlementResult, error) {
	subtotal := order.Subtotal()
	bill := models.Bill{
		OrderIDs: []uint{order.ID},
		WaiterID: &order.WaiterID,
		Subtotal: subtotal,
		Tax:      0,
		Total:    subtotal,
		Status:   models.BillStatusUnpaid,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", models.OrderStatusBilled).Error
	})
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusBilled

	s.events.BillCreated(&bill)
	return s.SettleBill(bill.ID)
}

// depleteStock decrements on-hand stock for every ingredient of every sold
// line on the bill. Missing catalog or stock rows are skipped and reported;
// a paid bill must not fail because catalog data is incomplete.
func (s *BillingService) depleteStock(bill *models.Bill) []dtos.SkippedAdjustment {
	var skipped []dtos.SkippedAdjustment

	var orders []models.Order
	if err := s.db.Preload("Items").Where("id IN ?", bill.OrderIDs).Find(&orders).Error; err != nil {
		log.Printf("billing: failed to load orders for bill %d depletion: %v", bill.ID, err)
		return skipped
	}

	for _, order := range orders {
		for _, line := range order.Items {
			var menuItem models.MenuItem
			err := s.db.Preload("Ingredients").First(&menuItem, line.MenuItemID).Error
			if err != nil {
				skipped = append(skipped, dtos.SkippedAdjustment{
					OrderID:    order.ID,
					MenuItemID: line.MenuItemID,
					Reason:     "menu item not found",
				})
				continue
			}

			for _, ingredient := range menuItem.Ingredients {
				delta := ingredient.Quantity * float64(line.Quantity)
				result := s.db.Model(&models.StockItem{}).
					Where("id = ?", ingredient.StockItemID).
					UpdateColumn("quantity_in_stock", gorm.Expr("quantity_in_stock - ?", delta))
				if result.Error != nil || result.RowsAffected == 0 {
					skipped = append(skipped, dtos.SkippedAdjustment{
						OrderID:     order.ID,
						MenuItemID:  line.MenuItemID,
						StockItemID: ingredient.StockItemID,
						Reason:      "stock item not found",
					})
				}
			}
		}
	}

	return skipped
}
