package models

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
)

// Table occupancy is derived from order statuses: occupied while at least one
// order on the table is pending/approved/prepared, released otherwise. The
// status column is kept denormalized for fast reads and recomputed on every
// order transition that can change it.
type Table struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TableNumber int    `gorm:"not null;uniqueIndex" json:"table_number"`
	Status      string `gorm:"type:varchar(10);not null;default:'available'" json:"status"`
	WaiterID    *uint  `json:"waiter_id,omitempty"`
}
