package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a purchase of a single product
type Order struct {
	ID           int64           `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	CustomerName string          `json:"customerName" db:"customer_name" gorm:"type:varchar(200);not null"`
	OrderDate    time.Time       `json:"orderDate" db:"order_date" gorm:"type:timestamptz;not null;autoCreateTime;<-:create"`
	Total        decimal.Decimal `json:"total" db:"total" gorm:"type:decimal(10,2);not null"`
	ProductID    int64           `json:"productId" db:"product_id" gorm:"not null;index:idx_order_product_id"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}
