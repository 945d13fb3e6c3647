package models

import (
	"github.com/shopspring/decimal"
)

// Product represents an item for sale in the shop.
//
// Price intentionally carries no non-negativity constraint; the column is a
// plain decimal(10,2) and callers may store any value that fits.
type Product struct {
	ID          int64           `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string          `json:"name" db:"name" gorm:"type:varchar(200);not null"`
	Description string          `json:"description" db:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" db:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" db:"stock" gorm:"not null;default:0"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}
