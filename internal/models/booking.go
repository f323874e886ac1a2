package models

import "time"

// Booking mirrors one row of the nine-column spreadsheet schema.
// Date is the display-formatted dd/MM/yyyy string, not a sortable key.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"-"`

	BookingID  string `gorm:"size:36;uniqueIndex" json:"booking_id"`
	CustomerID string `gorm:"size:32;index" json:"customer_id"`

	Status string `gorm:"size:20;default:'Active';index:idx_slot,priority:4" json:"status"`
	Date   string `gorm:"size:10;index:idx_slot,priority:2" json:"date"`
	Time   string `gorm:"size:10;index:idx_slot,priority:3" json:"time"`

	Service  string `gorm:"size:100" json:"service"`
	Name     string `gorm:"size:100" json:"name"`
	Phone    string `gorm:"size:20;index:idx_slot,priority:1" json:"phone"`
	Comments string `gorm:"size:500" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
