package repository

import (
	"invoice-service-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Insert(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// UpdateFields overwrites exactly the mutable columns of one invoice.
// Identifier and date are never touched.
func (r *InvoiceRepository) UpdateFields(id string, customerID string, amountCents int64, status string) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id":  customerID,
			"amount_cents": amountCents,
			"status":       status,
		}).Error
}

// Delete removes an invoice by id. Deleting an id that does not exist is
// a no-op, not an error.
func (r *InvoiceRepository) Delete(id string) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}

func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("date desc, created_at desc").Find(&invoices).Error
	return invoices, err
}
