package repository

import (
	"invoice-service-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name asc").Find(&customers).Error
	return customers, err
}
