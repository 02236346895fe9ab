package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bhinnashad-api/apperrors"
	"bhinnashad-api/models"
)

type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

func (s *TableService) List() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Order("table_number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) Create(tableNumber int) (*models.Table, error) {
	if tableNumber < 1 {
		return nil, apperrors.Validationf("table number must be positive")
	}

	table := models.Table{TableNumber: tableNumber, Status: models.TableStatusAvailable}
	if err := s.db.Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// SetStatus updates a table's occupancy by table number. Orders and bills
// reference tables by number rather than primary key, so this is the write
// path every occupancy side effect goes through.
func (s *TableService) SetStatus(tableNumber int, status string, waiterID *uint) error {
	return s.setStatusOn(s.db, tableNumber, status, waiterID)
}

func (s *TableService) setStatusOn(db *gorm.DB, tableNumber int, status string, waiterID *uint) error {
	result := db.Model(&models.Table{}).
		Where("table_number = ?", tableNumber).
		Updates(map[string]interface{}{"status": status, "waiter_id": waiterID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("table %d", tableNumber)
	}
	return nil
}

// ReleaseIfIdle frees a table once no order on it is in a blocking status
// (pending, approved, prepared). A lone served-but-unbilled order does not
// hold the table; that is a deliberate carry-over from the product design.
// Nil tableNumber (pickup orders) is a no-op.
func (s *TableService) ReleaseIfIdle(tableNumber *int) error {
	if tableNumber == nil {
		return nil
	}

	var blocking int64
	err := s.db.Model(&models.Order{}).
		Where("table_number = ? AND status IN ?", *tableNumber, models.BlockingStatuses).
		Count(&blocking).Error
	if err != nil {
		return fmt.Errorf("failed to count active orders for table %d: %w", *tableNumber, err)
	}

	if blocking > 0 {
		return nil
	}

	err = s.SetStatus(*tableNumber, models.TableStatusAvailable, nil)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}
