package database

import (
	"gorm.io/gorm"

	"github.com/demosite/blogshop-backend/models"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db}
}

// FindAll returns all products from the database
func (r *ProductRepo) FindAll() ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.Find(&products).Error
	return products, err
}

// FindByID returns a product by its ID
func (r *ProductRepo) FindByID(id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Add inserts a new product into the database
func (r *ProductRepo) Add(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates an existing product in the database
func (r *ProductRepo) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product by id. Its orders go with it via the schema's
// cascade rule.
func (r *ProductRepo) Delete(id int64) error {
	return r.db.Delete(&models.Product{}, id).Error
}
