package services

import (
	"log"

	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/dtos"
	"bhinnashad-api/models"
)

type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// ===== Stock items =====

func (s *StockService) ListItems() ([]models.StockItem, error) {
	var items []models.StockItem
	if err := s.db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *StockService) GetItem(id uint) (*models.StockItem, error) {
	var item models.StockItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, apperrors.NotFoundf("stock item %d", id)
	}
	return &item, nil
}

func (s *StockService) CreateItem(input dtos.StockItemInput) (*models.StockItem, error) {
	if !models.ValidStockUnit(input.Unit) {
		return nil, apperrors.Validationf("invalid unit %q", input.Unit)
	}

	item := models.StockItem{
		Name:               input.Name,
		Unit:               input.Unit,
		QuantityInStock:    input.QuantityInStock,
		LowStockThreshold:  input.LowStockThreshold,
		AverageCostPerUnit: input.AverageCostPerUnit,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *StockService) UpdateItem(id uint, input dtos.StockItemInput) (*models.StockItem, error) {
	if !models.ValidStockUnit(input.Unit) {
		return nil, apperrors.Validationf("invalid unit %q", input.Unit)
	}

	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Unit = input.Unit
	item.QuantityInStock = input.QuantityInStock
	item.LowStockThreshold = input.LowStockThreshold
	item.AverageCostPerUnit = input.AverageCostPerUnit
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StockService) DeleteItem(id uint) error {
	result := s.db.Delete(&models.StockItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("stock item %d", id)
	}
	return nil
}

// AdjustQuantity applies a signed delta as a single atomic column update.
// Quantities are allowed to go negative: over-sold stock is a signal for
// reconciliation, not an error.
func (s *StockService) AdjustQuantity(id uint, delta float64) error {
	result := s.db.Model(&models.StockItem{}).
		Where("id = ?", id).
		UpdateColumn("quantity_in_stock", gorm.Expr("quantity_in_stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("stock item %d", id)
	}
	return nil
}

// ===== Usage logs =====

func (s *StockService) RecordUsage(input dtos.UsageLogInput, recordedBy uint) (*models.StockUsageLog, error) {
	if !models.ValidUsageCategory(input.Category) {
		return nil, apperrors.Validationf("invalid usage category %q", input.Category)
	}
	if input.QuantityUsed <= 0 {
		return nil, apperrors.Validationf("quantity used must be positive")
	}

	if _, err := s.GetItem(input.StockItemID); err != nil {
		return nil, err
	}

	if err := s.AdjustQuantity(input.StockItemID, -input.QuantityUsed); err != nil {
		return nil, err
	}

	entry := models.StockUsageLog{
		StockItemID:  input.StockItemID,
		QuantityUsed: input.QuantityUsed,
		Category:     input.Category,
		Notes:        input.Notes,
		RecordedBy:   recordedBy,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *StockService) ListUsageLogs(filter dtos.UsageLogFilter) ([]models.StockUsageLog, error) {
	query := s.db.Model(&models.StockUsageLog{})
	if filter.StockItemID != 0 {
		query = query.Where("stock_item_id = ?", filter.StockItemID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var logs []models.StockUsageLog
	if err := query.Order("timestamp DESC").Limit(100).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ===== Suppliers =====

func (s *StockService) ListSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *StockService) CreateSupplier(input dtos.SupplierInput) (*models.Supplier, error) {
	supplier := models.Supplier{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.db.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *StockService) UpdateSupplier(id uint, input dtos.SupplierInput) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		return nil, apperrors.NotFoundf("supplier %d", id)
	}

	supplier.Name = input.Name
	supplier.Phone = input.Phone
	supplier.Email = input.Email
	supplier.Address = input.Address
	if err := s.db.Save(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *StockService) DeleteSupplier(id uint) error {
	result := s.db.Delete(&models.Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("supplier %d", id)
	}
	return nil
}

// ===== Purchase orders =====

func (s *StockService) ListPurchaseOrders() ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	if err := s.db.Preload("Items").Order("date DESC").Limit(100).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *StockService) CreatePurchaseOrder(input dtos.CreatePurchaseOrderInput) (*models.PurchaseOrder, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, input.SupplierID).Error; err != nil {
		return nil, apperrors.NotFoundf("supplier %d", input.SupplierID)
	}

	var totalCost float64
	items := make([]models.PurchaseOrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if _, err := s.GetItem(line.StockItemID); err != nil {
			return nil, err
		}
		totalCost += line.CostPerUnit * line.Quantity
		items = append(items, models.PurchaseOrderItem{
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			CostPerUnit: line.CostPerUnit,
		})
	}

	order := models.PurchaseOrder{
		SupplierID: input.SupplierID,
		Items:      items,
		TotalCost:  totalCost,
		Status:     models.PurchaseStatusOrdered,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdatePurchaseStatus moves a purchase order between ordered/received/
// cancelled. Reaching "received" applies the receipt to stock.
func (s *StockService) UpdatePurchaseStatus(id uint, status string) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, apperrors.NotFoundf("purchase order %d", id)
	}

	if status == models.PurchaseStatusReceived && order.Status != models.PurchaseStatusReceived {
		s.receive(&order)
	}

	order.Status = status
	if err := s.db.Model(&models.PurchaseOrder{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// receive folds a purchase line into each stock item's weighted-average
// cost: (oldQty*oldAvg + qty*cost) / (oldQty+qty), full float64 precision.
// Lines apply independently; a missing stock item skips its line without
// undoing earlier ones. The read-modify-write runs inside a transaction per
// line since averaging cannot be expressed as a single column update.
func (s *StockService) receive(order *models.PurchaseOrder) {
	for _, line := range order.Items {
		line := line
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var item models.StockItem
			if err := tx.First(&item, line.StockItemID).Error; err != nil {
				return nil // skip missing stock rows, keep the rest
			}

			currentValue := item.QuantityInStock * item.AverageCostPerUnit
			purchaseValue := line.Quantity * line.CostPerUnit
			newQuantity := item.QuantityInStock + line.Quantity

			newAverage := item.AverageCostPerUnit
			if newQuantity != 0 {
				newAverage = (currentValue + purchaseValue) / newQuantity
			}

			return tx.Model(&models.StockItem{}).Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"quantity_in_stock":     newQuantity,
					"average_cost_per_unit": newAverage,
				}).Error
		})
		if err != nil {
			log.Printf("stock: failed to apply purchase order %d line for stock item %d: %v",
				order.ID, line.StockItemID, err)
		}
	}
}
