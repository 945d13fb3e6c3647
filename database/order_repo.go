package database

import (
	"gorm.io/gorm"

	"github.com/demosite/blogshop-backend/models"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db}
}

// FindAll returns all orders with their products
func (r *OrderRepo) FindAll() ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Product").Find(&orders).Error
	return orders, err
}

// FindByProduct returns all orders referencing the given product
func (r *OrderRepo) FindByProduct(productID int64) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Where("product_id = ?", productID).Find(&orders).Error
	return orders, err
}

// FindByID returns an order by its ID
func (r *OrderRepo) FindByID(id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Product").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Add inserts a new order into the database
func (r *OrderRepo) Add(order *models.Order) error {
	return r.db.Create(order).Error
}

// Delete removes an order from the database by id
func (r *OrderRepo) Delete(id int64) error {
	return r.db.Delete(&models.Order{}, id).Error
}
