package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM model for the products table
type ProductModel struct {
	BaseModel
	ProductID       string `gorm:"uniqueIndex;not null"`
	Name            string `gorm:"not null"`
	Brand           *string
	Type            *string
	Category        *string `gorm:"index"`
	Supplier        *string
	SupplierEmail   *string
	SupplierWebsite *string
	Gym             *string
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity        string          `gorm:"not null;default:0"`
	Stock           string          `gorm:"not null;default:0"`
	PaymentMethod   *string
	SaleStatus      string    `gorm:"not null;default:registrado;index"`
	LastUpdate      time.Time `gorm:"not null"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *catalog.Product {
	var paymentMethod *catalog.PaymentMethod
	if m.PaymentMethod != nil {
		method := catalog.PaymentMethod(*m.PaymentMethod)
		paymentMethod = &method
	}
	return &catalog.Product{
		BaseEntity:      m.BaseModel.ToDomain(),
		ProductID:       m.ProductID,
		Name:            m.Name,
		Brand:           m.Brand,
		Type:            m.Type,
		Category:        m.Category,
		Supplier:        m.Supplier,
		SupplierEmail:   m.SupplierEmail,
		SupplierWebsite: m.SupplierWebsite,
		Gym:             m.Gym,
		Price:           m.Price,
		Cost:            m.Cost,
		Quantity:        m.Quantity,
		Stock:           m.Stock,
		PaymentMethod:   paymentMethod,
		SaleStatus:      catalog.SaleStatus(m.SaleStatus),
		LastUpdate:      m.LastUpdate,
	}
}

// ProductModelFromDomain converts a domain product to its model
func ProductModelFromDomain(product *catalog.Product) *ProductModel {
	var paymentMethod *string
	if product.PaymentMethod != nil {
		method := string(*product.PaymentMethod)
		paymentMethod = &method
	}
	model := &ProductModel{
		ProductID:       product.ProductID,
		Name:            product.Name,
		Brand:           product.Brand,
		Type:            product.Type,
		Category:        product.Category,
		Supplier:        product.Supplier,
		SupplierEmail:   product.SupplierEmail,
		SupplierWebsite: product.SupplierWebsite,
		Gym:             product.Gym,
		Price:           product.Price,
		Cost:            product.Cost,
		Quantity:        product.Quantity,
		Stock:           product.Stock,
		PaymentMethod:   paymentMethod,
		SaleStatus:      string(product.SaleStatus),
		LastUpdate:      product.LastUpdate,
	}
	model.FromDomainBaseEntity(product.BaseEntity)
	return model
}
