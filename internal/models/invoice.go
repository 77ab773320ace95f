package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice status values accepted at the validation boundary.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  string    `gorm:"index;not null" json:"customerId"`
	AmountCents int64     `gorm:"not null" json:"amountCents"`
	Status      string    `gorm:"index;not null" json:"status"`
	// Date is the creation date in ISO calendar form (2006-01-02),
	// assigned at create time and never updated.
	Date      string    `gorm:"size:10;not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
